package users

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/dayflow/internal/cli"
	"github.com/julianstephens/dayflow/internal/i18n"
	"github.com/julianstephens/dayflow/internal/models"
	"github.com/julianstephens/dayflow/internal/planner"
	"github.com/julianstephens/dayflow/internal/session"
)

const avatarURL = "https://api.dicebear.com/7.x/notionists/svg?seed="

var ErrInvalidEmail = errors.New("invalid email address")

// UserCmd groups the mocked profile commands. Nothing leaves the machine.
type UserCmd struct {
	Guest  UserGuestCmd  `cmd:"" help:"Continue as guest."`
	Login  UserLoginCmd  `cmd:"" help:"Create a local profile from an email address."`
	Logout UserLogoutCmd `cmd:"" help:"Forget the current profile."`
	Show   UserShowCmd   `cmd:"" default:"1" help:"Show the current profile."`
}

type UserGuestCmd struct{}

func (c *UserGuestCmd) Run(ctx *cli.Context) error {
	ctx.Load()
	if _, err := ctx.Dispatch(session.SetUser{User: models.GuestProfile()}); err != nil {
		return err
	}
	fmt.Println("Continuing as guest.")
	return nil
}

type UserLoginCmd struct {
	Email string `arg:"" help:"Email address."`
}

func (c *UserLoginCmd) Run(ctx *cli.Context) error {
	ctx.Load()
	user, err := ProfileFromEmail(c.Email)
	if err != nil {
		return err
	}
	if _, err := ctx.Dispatch(session.SetUser{User: user}); err != nil {
		return err
	}
	fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

// ProfileFromEmail builds a profile named after the local part of email.
func ProfileFromEmail(email string) (models.UserProfile, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%q: %w", email, ErrInvalidEmail)
	}
	name, _, _ := strings.Cut(addr.Address, "@")
	return models.UserProfile{
		ID:     uuid.New().String(),
		Name:   name,
		Email:  addr.Address,
		Avatar: avatarURL + name,
	}, nil
}

type UserLogoutCmd struct{}

func (c *UserLogoutCmd) Run(ctx *cli.Context) error {
	ctx.Load()
	if _, err := ctx.Dispatch(session.ClearUser{}); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

type UserShowCmd struct{}

func (c *UserShowCmd) Run(ctx *cli.Context) error {
	s := ctx.Load()
	if s.User == nil {
		fmt.Println("No profile. Run 'dayflow user guest' or 'dayflow user login <email>'.")
		return nil
	}
	tr := i18n.New(s.Settings.Language)
	fmt.Printf("%s, %s\n", tr.Greeting(planner.Greeting(ctx.Now())), s.User.Name)
	fmt.Printf("  Email:  %s\n", s.User.Email)
	if s.User.Avatar != "" {
		fmt.Printf("  Avatar: %s\n", s.User.Avatar)
	}
	if s.User.IsGuest {
		fmt.Println("  (guest)")
	}
	return nil
}
