package cli

import (
	"context"

	"github.com/relops-lab/glgate/pkg/cli/config"
	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/relops-lab/glgate/pkg/usecase"
	"github.com/relops-lab/glgate/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdPermission() *cli.Command {
	var (
		gitlabCfg config.GitLab
		username  string
		target    string
		role      string
	)

	flags := joinFlags(
		gitlabCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "username",
				Usage:       "GitLab username to grant the role to",
				Required:    true,
				Destination: &username,
			},
			&cli.StringFlag{
				Name:        "target",
				Usage:       "Group name, or project path containing a slash",
				Required:    true,
				Destination: &target,
			},
			&cli.StringFlag{
				Name:        "role",
				Usage:       "Role to assign (guest, reporter, developer, maintainer, owner)",
				Required:    true,
				Destination: &role,
			},
		},
	)

	return &cli.Command{
		Name:  "permission",
		Usage: "Set a user's role on a group or project",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client := gitlabCfg.Configure()
			membershipUC := usecase.NewMembership(client)

			member, err := membershipUC.SetRole(ctx, username, target, role)
			if err != nil {
				apperr.Handle(ctx, err)
				if printErr := printResult(model.NewErrorResult(err)); printErr != nil {
					return printErr
				}
				return err
			}

			return printResult(model.NewSetRoleResult(username, target, role, member))
		},
	}
}
