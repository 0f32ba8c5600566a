package main

import (
	"fmt"

	"nuclight.org/feedctl/app/api"
)

type registerCommand struct {
	Email    string `long:"email" required:"true" description:"email address"`
	FullName string `long:"full-name" description:"display name"`

	Args struct {
		Username string `positional-arg-name:"username" required:"yes"`
		Password string `positional-arg-name:"password" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *registerCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := a.gate.Register(rootCtx, api.RegisterParams{
		Username: cmd.Args.Username,
		Email:    cmd.Email,
		FullName: cmd.FullName,
		Password: cmd.Args.Password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("registered and logged in as %s\n", user.Username)
	return nil
}

type loginCommand struct {
	Args struct {
		Username string `positional-arg-name:"username" required:"yes"`
		Password string `positional-arg-name:"password" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *loginCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := a.gate.Login(rootCtx, cmd.Args.Username, cmd.Args.Password)
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s\n", user.Username)
	return nil
}

type logoutCommand struct{}

func (cmd *logoutCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.gate.Logout(rootCtx); err != nil {
		return err
	}

	fmt.Println("logged out")
	return nil
}

type whoamiCommand struct{}

func (cmd *whoamiCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	user, err := a.requireUser(rootCtx)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)", user.Username, user.Email)
	if user.FullName != "" {
		fmt.Printf(" - %s", user.FullName)
	}
	fmt.Println()
	return nil
}
