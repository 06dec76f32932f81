package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faraday-ai/faraday/internal/curriculum"
	"github.com/faraday-ai/faraday/internal/scoring"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample PE activities and scoring criteria",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbh, err := openDB(cmd.Context())
		if err != nil {
			return err
		}
		defer dbh.Close()

		store := curriculum.NewSQLStore(dbh, dbDriver)
		for _, a := range sampleActivities() {
			// same validation the upload endpoint applies
			if _, err := scoring.ParseCriteria(a.Criteria); err != nil {
				return fmt.Errorf("sample %s: %w", a.ID, err)
			}
			if err := store.PutActivity(cmd.Context(), a); err != nil {
				return fmt.Errorf("put %s: %w", a.ID, err)
			}
			fmt.Printf("seeded activity %s (%s)\n", a.ID, a.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func sampleActivities() []curriculum.Activity {
	return []curriculum.Activity{
		{
			ID:         "forward-roll",
			Title:      "Forward Roll",
			Subject:    "gymnastics",
			GradeLevel: "3-5",
			Criteria: json.RawMessage(`{
				"form":      {"weight": 0.6, "sub_criteria": {"posture": 0.5, "balance": 0.5}},
				"execution": {"weight": 0.4, "sub_criteria": {"speed": 1.0}}
			}`),
		},
		{
			ID:         "standing-long-jump",
			Title:      "Standing Long Jump",
			Subject:    "track",
			GradeLevel: "6-8",
			Criteria: json.RawMessage(`{
				"takeoff": {"weight": 0.5, "sub_criteria": {"arm_swing": 0.4, "knee_bend": 0.6}},
				"flight":  {"weight": 0.2, "sub_criteria": {"body_position": 1.0}},
				"landing": {"weight": 0.3, "sub_criteria": {"control": 0.7, "distance": 0.3}}
			}`),
		},
		{
			ID:         "chest-pass",
			Title:      "Basketball Chest Pass",
			Subject:    "basketball",
			GradeLevel: "K-2",
			Criteria: json.RawMessage(`{
				"technique": {"weight": 0.7, "sub_criteria": {"grip": 0.3, "step": 0.3, "follow_through": 0.4}},
				"accuracy":  {"weight": 0.3, "sub_criteria": {"on_target": 1.0}}
			}`),
		},
	}
}
