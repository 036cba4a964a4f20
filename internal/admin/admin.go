// Package admin implements the operator CLI: bootstrapping admin accounts
// and minting access tokens for existing users.
package admin

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/clothescatalog/internal/netx"
	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
	"github.com/dmitrijs2005/clothescatalog/internal/server/services"
	"github.com/dmitrijs2005/clothescatalog/internal/server/validation"
)

var (
	ErrUsage            = errors.New("usage error")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

const usage = `Usage: admin [-c config] [-d dsn] [-s secret] <command> [flags]

Commands:
  create-admin -email E [-name "First Last"] [-role admin|super_admin] [-phone P]
      Create an admin account, or promote the existing account with that email.
      The password prompt is only used when a new account is created.
  token -email E
      Verify the password of an existing account and print an access token.
  upload-photo -file PATH
      Upload a JPEG, PNG or WebP image to object storage and print the
      photo_url to use when creating a clothes item.
`

var commands = map[string]bool{"create-admin": true, "token": true, "upload-photo": true, "help": true}

var (
	readFile = os.ReadFile
	upload   = func(ctx context.Context, url, contentType string, body []byte) error {
		return netx.PutPresigned(ctx, nil, url, contentType, body)
	}
)

type UserService interface {
	BootstrapAdmin(ctx context.Context, in validation.Registration, role models.Role) (*models.User, bool, error)
	IssueToken(ctx context.Context, email, password string) (string, error)
}

type PhotoService interface {
	PresignUpload(ctx context.Context, contentType string) (*services.PhotoUpload, error)
}

type App struct {
	users  UserService
	photos PhotoService
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(us UserService, ps PhotoService, in io.Reader, out io.Writer) *App {
	return &App{users: us, photos: ps, in: bufio.NewReader(in), out: out}
}

// CommandArgs drops the global flags in front of the first command name.
func CommandArgs(args []string) []string {
	for i, a := range args {
		if commands[a] {
			return args[i:]
		}
	}
	return nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}

	switch args[0] {
	case "create-admin":
		return a.createAdmin(ctx, args[1:])
	case "token":
		return a.token(ctx, args[1:])
	case "upload-photo":
		return a.uploadPhoto(ctx, args[1:])
	case "help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
}

func (a *App) createAdmin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "full name (first and last)")
	roleName := fs.String("role", string(models.RoleAdmin), "admin or super_admin")
	phone := fs.String("phone", "", "optional phone number")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	role, err := models.ParseRole(*roleName)
	if err != nil {
		return err
	}

	if *email == "" {
		if *email, err = GetSimpleText(a.in, "Email", a.out); err != nil {
			return err
		}
	}
	if *name == "" {
		if *name, err = GetSimpleText(a.in, "Full name (leave empty to promote an existing account)", a.out); err != nil {
			return err
		}
	}

	pw, err := a.newPassword()
	if err != nil {
		return err
	}
	defer wipe(pw)

	in := validation.Registration{Email: *email, FullName: *name, Password: string(pw)}
	if *phone != "" {
		in.Phone = phone
	}

	user, created, err := a.users.BootstrapAdmin(ctx, in, role)
	if err != nil {
		return err
	}

	action := "promoted"
	if created {
		action = "created"
	}
	fmt.Fprintf(a.out, "%s %s <%s> as %s\n", action, user.ID, user.Email, user.Role)
	return nil
}

func (a *App) newPassword() ([]byte, error) {
	pw, err := GetPassword(a.out, "Enter password: ")
	if err != nil {
		return nil, err
	}
	again, err := GetPassword(a.out, "Repeat password: ")
	if err != nil {
		wipe(pw)
		return nil, err
	}
	defer wipe(again)

	if !bytes.Equal(pw, again) {
		wipe(pw)
		return nil, ErrPasswordMismatch
	}
	return pw, nil
}

func (a *App) token(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var err error
	if *email == "" {
		if *email, err = GetSimpleText(a.in, "Email", a.out); err != nil {
			return err
		}
	}

	pw, err := GetPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer wipe(pw)

	token, err := a.users.IssueToken(ctx, *email, string(pw))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}

// uploadPhoto sniffs the content type of the file, asks for a presigned PUT
// and uploads the bytes directly to object storage.
func (a *App) uploadPhoto(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload-photo", flag.ContinueOnError)
	fs.SetOutput(a.out)
	path := fs.String("file", "", "image file to upload")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if *path == "" {
		return fmt.Errorf("%w: -file is required", ErrUsage)
	}

	data, err := readFile(*path)
	if err != nil {
		return err
	}

	contentType := http.DetectContentType(data)
	up, err := a.photos.PresignUpload(ctx, contentType)
	if err != nil {
		return err
	}

	if err := upload(ctx, up.UploadURL, contentType, data); err != nil {
		return err
	}

	fmt.Fprintln(a.out, up.PhotoURL)
	return nil
}
