package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"roamai/internal/models/travel_models"
)

var planFlags struct {
	preferenceFlags
	city    string
	country string
	region  string
	name    string
	email   string
	origin  string
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Create and book a complete itinerary",
	RunE:  runPlan,
}

func init() {
	planFlags.register(planCmd)
	planCmd.Flags().StringVar(&planFlags.city, "city", "", "Destination city")
	planCmd.Flags().StringVar(&planFlags.country, "country", "", "Destination country")
	planCmd.Flags().StringVar(&planFlags.region, "region", "", "Destination region")
	planCmd.Flags().StringVar(&planFlags.name, "name", "Traveler", "Traveler name")
	planCmd.Flags().StringVar(&planFlags.email, "email", "traveler@example.com", "Traveler email")
	planCmd.Flags().StringVar(&planFlags.origin, "origin", "", "Departure city")

	_ = planCmd.MarkFlagRequired("city")
	_ = planCmd.MarkFlagRequired("country")
}

func runPlan(cmd *cobra.Command, args []string) error {
	preferences, err := planFlags.toPreferences()
	if err != nil {
		return err
	}

	destination := travel_models.Location{
		City:    planFlags.city,
		Country: planFlags.country,
		Region:  planFlags.region,
	}
	traveler := travel_models.TravelerDetails{
		Name:          planFlags.name,
		Email:         planFlags.email,
		DepartureCity: planFlags.origin,
	}

	itinerary, err := buildPlanner().CreateAndBookItinerary(cmd.Context(), preferences, destination, traveler)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	return printJSON(itinerary)
}
