package main

import (
	"github.com/spf13/cobra"
)

var recommendFlags preferenceFlags

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend destinations matching your preferences",
	RunE:  runRecommend,
}

var trendingRegion string

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending travel destinations",
	RunE:  runTrending,
}

var socialCmd = &cobra.Command{
	Use:   "social <destination>",
	Short: "Show trending social media content for a destination",
	Args:  cobra.ExactArgs(1),
	RunE:  runSocial,
}

var pilgrimageFlags preferenceFlags

var pilgrimageCmd = &cobra.Command{
	Use:   "pilgrimage",
	Short: "Build a pilgrimage travel guide",
	RunE:  runPilgrimage,
}

func init() {
	recommendFlags.register(recommendCmd)
	pilgrimageFlags.register(pilgrimageCmd)
	trendingCmd.Flags().StringVar(&trendingRegion, "region", "", "Region to focus on")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	preferences, err := recommendFlags.toPreferences()
	if err != nil {
		return err
	}

	recommender, err := buildRecommender()
	if err != nil {
		return err
	}

	recommendations, err := recommender.RecommendDestinations(cmd.Context(), preferences)
	if err != nil {
		return err
	}

	return printJSON(recommendations)
}

func runTrending(cmd *cobra.Command, args []string) error {
	recommender, err := buildRecommender()
	if err != nil {
		return err
	}

	trends, err := recommender.TrendingDestinations(cmd.Context(), trendingRegion)
	if err != nil {
		return err
	}

	return printJSON(trends)
}

func runSocial(cmd *cobra.Command, args []string) error {
	recommender, err := buildRecommender()
	if err != nil {
		return err
	}

	content, err := recommender.SocialMediaContent(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return printJSON(content)
}

func runPilgrimage(cmd *cobra.Command, args []string) error {
	preferences, err := pilgrimageFlags.toPreferences()
	if err != nil {
		return err
	}

	recommender, err := buildRecommender()
	if err != nil {
		return err
	}

	guide, err := recommender.PilgrimageGuide(cmd.Context(), preferences)
	if err != nil {
		return err
	}

	return printJSON(guide)
}
