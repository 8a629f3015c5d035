package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budgetwise/internal/client"
	"github.com/carson-networks/budgetwise/internal/settings"
)

const (
	actionAdd     = "add"
	actionDelete  = "delete"
	actionRefresh = "refresh"
	actionQuit    = "quit"
)

// Settings drives a settings.Controller from huh prompts, redrawing on every state change.
type Settings struct {
	controller *settings.Controller
	out        io.Writer
	renderer   Renderer
	logger     *logrus.Logger
}

func NewSettings(controller *settings.Controller, out io.Writer, logger *logrus.Logger) *Settings {
	s := &Settings{
		controller: controller,
		out:        out,
		renderer:   NewRenderer(),
		logger:     logger,
	}
	controller.Subscribe(s.draw)
	return s
}

func (s *Settings) draw(state settings.State) {
	fmt.Fprintln(s.out, s.renderer.RenderSettings(state))
	fmt.Fprintln(s.out)
}

// Run loads the accounts and prompts until the user quits or aborts.
func (s *Settings) Run(ctx context.Context) error {
	s.report("load", s.controller.Load(ctx))

	for {
		action, err := s.chooseAction()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		switch action {
		case actionAdd:
			err = s.add(ctx)
		case actionDelete:
			err = s.delete(ctx)
		case actionRefresh:
			s.report("load", s.controller.Load(ctx))
		case actionQuit:
			return nil
		}

		if errors.Is(err, huh.ErrUserAborted) {
			continue
		}
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (s *Settings) chooseAction() (string, error) {
	var action string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(
					huh.NewOption("Add account", actionAdd),
					huh.NewOption("Delete account", actionDelete),
					huh.NewOption("Refresh", actionRefresh),
					huh.NewOption("Quit", actionQuit),
				).
				Value(&action),
		),
	).Run()
	return action, err
}

func (s *Settings) add(ctx context.Context) error {
	form := s.controller.State().Form
	name := form.Name
	accountType := form.Type

	typeOptions := make([]huh.Option[client.AccountType], len(client.AccountTypes))
	for i, t := range client.AccountTypes {
		typeOptions[i] = huh.NewOption(string(t), t)
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Account name").
				Value(&name),
			huh.NewSelect[client.AccountType]().
				Title("Type").
				Options(typeOptions...).
				Value(&accountType),
		),
	).Run()
	if err != nil {
		return err
	}

	s.controller.SetName(name)
	if err := s.controller.SetType(accountType); err != nil {
		return err
	}
	s.report("create", s.controller.Submit(ctx))
	return nil
}

func (s *Settings) delete(ctx context.Context) error {
	var options []huh.Option[string]
	for _, e := range s.controller.State().Entries {
		if !settings.CanDelete(e) {
			continue
		}
		options = append(options, huh.NewOption(fmt.Sprintf("%s · %s", e.Data().Name, e.Data().Type), e.Key()))
	}
	if len(options) == 0 {
		fmt.Fprintln(s.out, s.renderer.muted.Render("Nothing to delete."))
		return nil
	}

	var id string
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Delete which account?").
				Options(options...).
				Value(&id),
			huh.NewConfirm().
				Title("Are you sure?").
				Value(&confirmed),
		),
	).Run()
	if err != nil || !confirmed {
		return err
	}

	s.report("delete", s.controller.Delete(ctx, id))
	return nil
}

// report logs store failures. The controller already shows them to the user.
func (s *Settings) report(action string, err error) {
	if err == nil {
		return
	}
	s.logger.WithError(err).WithField("action", action).Debug("Settings action failed")
}
