package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/twitterctl/twitter"
)

// maxConcurrentLookups bounds parallel status lookups
const maxConcurrentLookups = 5

var (
	trimUser          bool
	extendedMode      bool
	includeMyRetweet  bool
	includeAltText    bool
	replyTo           int64
	autoPopulate      bool
	mediaIDs          []int64
	postLat           float64
	postLong          float64
	postPlaceID       string
	displayCoords     bool
	possiblySensitive bool
	assumeYes         bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Look up, post, retweet and delete statuses",
}

var statusShowCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show one or more statuses",
	Long: `Show statuses by ID. Several IDs are looked up concurrently and printed
in the order they were given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStatusShow,
}

var statusPostCmd = &cobra.Command{
	Use:   "post <text>",
	Short: "Post a new status",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatusPost,
}

var statusRetweetCmd = &cobra.Command{
	Use:   "retweet <id>",
	Short: "Retweet a status",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatusRetweet,
}

var statusDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one of your statuses",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatusDelete,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(statusShowCmd, statusPostCmd, statusRetweetCmd, statusDeleteCmd)

	statusCmd.PersistentFlags().BoolVar(&trimUser, "trim-user", false, "return only the author ID instead of the full user")

	statusShowCmd.Flags().BoolVar(&extendedMode, "extended", true, "request full_text instead of truncated text")
	statusShowCmd.Flags().BoolVar(&includeMyRetweet, "include-my-retweet", false, "include the ID of your retweet of the status")
	statusShowCmd.Flags().BoolVar(&includeAltText, "include-alt-text", false, "include media alt text")

	statusPostCmd.Flags().Int64Var(&replyTo, "reply-to", 0, "ID of the status to reply to")
	statusPostCmd.Flags().BoolVar(&autoPopulate, "auto-populate-reply", false, "fill in reply mentions automatically")
	statusPostCmd.Flags().Int64SliceVar(&mediaIDs, "media-id", nil, "ID of uploaded media to attach (repeatable)")
	statusPostCmd.Flags().Float64Var(&postLat, "lat", 0, "latitude the status refers to")
	statusPostCmd.Flags().Float64Var(&postLong, "long", 0, "longitude the status refers to")
	statusPostCmd.Flags().StringVar(&postPlaceID, "place-id", "", "place the status is sent from")
	statusPostCmd.Flags().BoolVar(&displayCoords, "display-coordinates", false, "show the exact coordinates on the status")
	statusPostCmd.Flags().BoolVar(&possiblySensitive, "sensitive", false, "mark attached media as possibly sensitive")
	statusPostCmd.MarkFlagsRequiredTogether("lat", "long")

	statusDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompt")
}

func runStatusShow(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	mode := twitter.TweetModeCompatibility
	if extendedMode {
		mode = twitter.TweetModeExtended
	}

	statuses := make([]*twitter.StatusMessage, len(ids))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentLookups)

	for i, id := range ids {
		g.Go(func() error {
			resp, err := service.Statuses.GetStatusMessageWithOptions(ctx, &twitter.GetStatusOptions{
				ID:                id,
				TrimUser:          trimUser,
				IncludeMyRetweet:  includeMyRetweet,
				IncludeExtAltText: includeAltText,
				TweetMode:         mode,
			})
			if err != nil {
				return fmt.Errorf("status %d: %w", id, err)
			}
			statuses[i] = resp.Body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(statuses) == 1 {
		return printer.PrintStatus(statuses[0])
	}
	return printer.PrintTimeline(statuses)
}

func runStatusPost(cmd *cobra.Command, args []string) error {
	opts := &twitter.PostStatusOptions{
		Status:                    args[0],
		InReplyToStatusID:         replyTo,
		AutoPopulateReplyMetadata: autoPopulate,
		MediaIDs:                  mediaIDs,
		PlaceID:                   postPlaceID,
		DisplayCoordinates:        displayCoords,
		PossiblySensitive:         possiblySensitive,
		TrimUser:                  trimUser,
	}
	if cmd.Flags().Changed("lat") {
		opts.Latitude = &postLat
		opts.Longitude = &postLong
	}

	resp, err := service.Statuses.PostStatusMessageWithOptions(cmd.Context(), opts)
	if err != nil {
		return err
	}

	return printer.PrintStatus(resp.Body)
}

func runStatusRetweet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	resp, err := service.Statuses.Retweet(cmd.Context(), id, trimUser)
	if err != nil {
		return err
	}

	logger.Info().Int64("status_id", id).Int64("retweet_id", resp.Body.ID).Msg("Retweeted status")
	return printer.PrintStatus(resp.Body)
}

func runStatusDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if !assumeYes {
		fmt.Fprintf(cmd.ErrOrStderr(), "Delete status %d? This cannot be undone. [y/N]: ", id)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			logger.Info().Int64("status_id", id).Msg("Deletion cancelled")
			return nil
		}
	}

	resp, err := service.Statuses.DestroyStatusMessage(cmd.Context(), id, trimUser)
	if err != nil {
		return err
	}

	return printer.PrintStatus(resp.Body)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid status ID: %q", s)
	}
	return id, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
