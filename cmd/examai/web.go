package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/examai/internal/quizclient"
	util "github.com/saulo-duarte/examai/internal/utils"
	"github.com/saulo-duarte/examai/internal/web"
)

func newWebCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Serve the quiz in a browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			client := quizclient.NewClient(settings.Client.APIBaseURL)
			defer client.Close()

			server, err := web.NewServer(client, web.Options{
				SessionIdle: settings.Web.SessionIdle,
				Location:    util.LoadLocation(settings.Client.Timezone),
			})
			if err != nil {
				return err
			}

			return serve(cmd.Context(), fmt.Sprintf(":%d", settings.Web.Port), server.Routes())
		},
	}
}
