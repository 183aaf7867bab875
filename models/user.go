package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 12

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:150;not null"`
	Email     string    `json:"email" gorm:"size:150;uniqueIndex;not null"`
	Password  []byte    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (user User) GetID() uint { return user.ID }

func (user *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	return nil
}

func (user *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(user.Password, []byte(password))
}
