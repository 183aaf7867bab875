package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"repairdesk-backend/database"
	"repairdesk-backend/middlewares"
	"repairdesk-backend/models"

	"github.com/gofiber/fiber/v2"
)

type RegisterDTO struct {
	Name     string `json:"name" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72" normalize:"-"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6" normalize:"-"`
}

// POST /user
func (h *Handlers) Register(c *fiber.Ctx) error {
	var in RegisterDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	in.Email = strings.ToLower(in.Email)

	existing, err := h.Users.List(c.UserContext(), map[string]any{"email": in.Email})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "email already exists")
	}

	user := models.User{Name: in.Name, Email: in.Email}
	if err := user.SetPassword(in.Password); err != nil {
		return err
	}
	if err := h.Users.Create(c.UserContext(), &user); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// POST /user/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var in LoginDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	users, err := h.Users.List(c.UserContext(), map[string]any{"email": strings.ToLower(in.Email)})
	if err != nil {
		return err
	}
	if len(users) == 0 || users[0].ComparePassword(in.Password) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}
	user := users[0]

	token, err := middlewares.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"accessToken": token,
		"user":        user,
	})
}

// POST /user/validate (behind IsAuthenticatedHeader)
func (h *Handlers) Validate(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid token subject")
	}
	user, err := h.Users.Get(c.UserContext(), uint(id))
	if errors.Is(err, database.ErrNotFound) {
		// Token outlived its user.
		return fiber.NewError(fiber.StatusUnauthorized, "unknown user")
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"valid": true, "user": user})
}

// POST /user/logout
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{
		"message": "success",
	})
}
