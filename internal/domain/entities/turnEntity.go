package entities

import "time"

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Turn is one stored message, user-authored or bot-authored, tied to the
// platform-assigned user identifier. Turns are immutable once written.
type Turn struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Role      string
	Content   string
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

func (Turn) TableName() string {
	return "messages"
}
