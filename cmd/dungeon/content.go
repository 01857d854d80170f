package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/dungeon/internal/game/enemy"
	"github.com/cory-johannsen/dungeon/internal/simulation"
)

var contentDir string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Content table commands",
}

var validateContentCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate item, reward and enemy tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := simulation.LoadContent(contentDir)
		if err != nil {
			return err
		}
		if err := c.Items.Validate(); err != nil {
			return fmt.Errorf("item tables: %w", err)
		}
		roster, err := enemy.NewRoster(c.Enemies)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "items:   rarity weights %v\n", c.Items.Rarity)
		fmt.Fprintf(out, "rewards: gold %d-%d, exp %d-%d\n", c.Rewards.Gold.Min, c.Rewards.Gold.Max, c.Rewards.Exp.Min, c.Rewards.Exp.Max)
		fmt.Fprintf(out, "enemies: %d normal, %d boss\n", len(roster.Templates(enemy.Normal)), len(roster.Templates(enemy.Boss)))
		return nil
	},
}

func init() {
	validateContentCmd.Flags().StringVar(&contentDir, "dir", "content", "content directory")
	contentCmd.AddCommand(validateContentCmd)
}
