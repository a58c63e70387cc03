package cli

import (
	"context"

	"github.com/relops-lab/glgate/pkg/cli/config"
	"github.com/relops-lab/glgate/pkg/domain/model"
	"github.com/relops-lab/glgate/pkg/usecase"
	"github.com/relops-lab/glgate/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdItems() *cli.Command {
	var (
		gitlabCfg config.GitLab
		itemType  string
		year      string
	)

	flags := joinFlags(
		gitlabCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "type",
				Usage:       "Kind of items to retrieve (mr or issues)",
				Required:    true,
				Destination: &itemType,
			},
			&cli.StringFlag{
				Name:        "year",
				Usage:       "Calendar year the items were created in",
				Required:    true,
				Destination: &year,
			},
		},
	)

	return &cli.Command{
		Name:  "items",
		Usage: "List issues or merge requests created in a given year",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			client := gitlabCfg.Configure()
			itemsUC := usecase.NewItems(client, usecase.WithMaxPages(gitlabCfg.MaxPages))

			items, err := itemsUC.ListItems(ctx, itemType, year)
			if err != nil {
				apperr.Handle(ctx, err)
				if printErr := printResult(model.NewErrorResult(err)); printErr != nil {
					return printErr
				}
				return err
			}

			return printResult(model.NewListItemsResult(itemType, year, items))
		},
	}
}
