package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "In-memory task, project and user management demo",
	Long: `Task Manager keeps users, tasks and projects in memory and exposes them
through an HTTP API (taskman serve) or an interactive console menu
(taskman console). Nothing survives the process; an optional JSON config
file and an append-only log file are the only artifacts on disk.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(versionCmd)
}
