package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitterctl/twitter"
)

var (
	geoLat         float64
	geoLong        float64
	geoAccuracy    string
	geoGranularity string
	geoMaxResults  int
)

var geoCmd = &cobra.Command{
	Use:   "geo",
	Short: "Look up places",
}

var geoReverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Find places near coordinates",
	Long: `Reverse geocode a latitude/longitude pair into nearby places.

Examples:
  twitterctl geo reverse --lat 37.7821 --long -122.4093
  twitterctl geo reverse --lat 37.7821 --long -122.4093 --granularity city --max-results 3`,
	Args: cobra.NoArgs,
	RunE: runGeoReverse,
}

var geoPlaceCmd = &cobra.Command{
	Use:   "place <place_id>",
	Short: "Show a place by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGeoPlace,
}

func init() {
	rootCmd.AddCommand(geoCmd)
	geoCmd.AddCommand(geoReverseCmd, geoPlaceCmd)

	geoReverseCmd.Flags().Float64Var(&geoLat, "lat", 0, "latitude, -90 to 90")
	geoReverseCmd.Flags().Float64Var(&geoLong, "long", 0, "longitude, -180 to 180")
	geoReverseCmd.Flags().StringVar(&geoAccuracy, "accuracy", "", "search radius in meters, or feet with an ft suffix")
	geoReverseCmd.Flags().StringVar(&geoGranularity, "granularity", "", "minimal place type: neighborhood, city, admin or country")
	geoReverseCmd.Flags().IntVar(&geoMaxResults, "max-results", 0, "hint for the number of places to return")
	_ = geoReverseCmd.MarkFlagRequired("lat")
	_ = geoReverseCmd.MarkFlagRequired("long")
}

func runGeoReverse(cmd *cobra.Command, args []string) error {
	resp, err := service.Geocode.ReverseGeocode(cmd.Context(), &twitter.ReverseGeocodeOptions{
		Latitude:    geoLat,
		Longitude:   geoLong,
		Accuracy:    geoAccuracy,
		Granularity: twitter.Granularity(strings.ToLower(geoGranularity)),
		MaxResults:  geoMaxResults,
	})
	if err != nil {
		return fmt.Errorf("failed to reverse geocode: %w", err)
	}

	return printer.PrintPlaces(resp.Body)
}

func runGeoPlace(cmd *cobra.Command, args []string) error {
	resp, err := service.Geocode.GetPlace(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get place: %w", err)
	}

	return printer.PrintPlace(resp.Body)
}
