package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitterctl/filter"
	"github.com/s0up4200/twitterctl/twitter"
)

var (
	tlCount              int
	tlSinceID            int64
	tlMaxID              int64
	tlTrimUser           bool
	tlExcludeReplies     bool
	tlContributorDetails bool
	tlNoRetweets         bool
	tlTweetMode          string
	tlFilter             string
	tlPreset             string
	tlAllPresets         bool
	tlUserID             int64
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Read timelines",
	Long: `Read the home, mentions, retweets-of-me or a user's timeline.

Results can be narrowed with --filter, an expression evaluated against
each status, or --preset, the name of a filter from the config file.
--all-presets prints how many statuses each configured preset matches.

Examples:
  twitterctl timeline home --count 50
  twitterctl timeline mentions --filter 'daysSince(CreatedAt) < 1'
  twitterctl timeline user golang --filter 'hasHashtag("go") and RetweetCount > 10'
  twitterctl timeline user --user-id 783214 --no-retweets
  twitterctl timeline home --count 200 --all-presets`,
}

var timelineHomeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the home timeline of the authenticating user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimeline(cmd, "home", service.Statuses.GetHomeTimeline)
	},
}

var timelineMentionsCmd = &cobra.Command{
	Use:   "mentions",
	Short: "Show statuses mentioning the authenticating user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimeline(cmd, "mentions", service.Statuses.GetMentionsTimeline)
	},
}

var timelineRetweetsOfMeCmd = &cobra.Command{
	Use:   "retweets-of-me",
	Short: "Show statuses by the authenticating user that others retweeted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTimeline(cmd, "retweets_of_me", service.Statuses.GetRetweetsOfMe)
	},
}

var timelineUserCmd = &cobra.Command{
	Use:   "user [screen_name]",
	Short: "Show the timeline of a user",
	Long: `Show the timeline of the user with the given screen name or --user-id.
Without either, the authenticating user's own timeline is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUserTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.AddCommand(timelineHomeCmd, timelineMentionsCmd, timelineRetweetsOfMeCmd, timelineUserCmd)

	flags := timelineCmd.PersistentFlags()
	flags.IntVarP(&tlCount, "count", "n", 0, "number of statuses to request, up to 200 (default: API default)")
	flags.Int64Var(&tlSinceID, "since-id", 0, "only statuses newer than this ID")
	flags.Int64Var(&tlMaxID, "max-id", 0, "only statuses older than or equal to this ID")
	flags.BoolVar(&tlTrimUser, "trim-user", false, "return only author IDs instead of full users")
	flags.BoolVar(&tlExcludeReplies, "exclude-replies", false, "drop replies from the timeline")
	flags.BoolVar(&tlContributorDetails, "contributor-details", false, "include contributor screen names")
	flags.BoolVar(&tlNoRetweets, "no-retweets", false, "drop native retweets from the timeline")
	flags.StringVar(&tlTweetMode, "tweet-mode", string(twitter.TweetModeExtended), "payload mode: compat or extended")
	flags.StringVarP(&tlFilter, "filter", "f", "", "filter expression applied to the returned statuses")
	flags.StringVarP(&tlPreset, "preset", "p", "", "name of a filter preset from the config file")
	flags.BoolVar(&tlAllPresets, "all-presets", false, "print how many statuses each configured preset matches")
	timelineCmd.MarkFlagsMutuallyExclusive("filter", "preset", "all-presets")

	timelineUserCmd.Flags().Int64Var(&tlUserID, "user-id", 0, "numeric ID of the user")
}

// timelineOptions builds the shared timeline options from the command flags
func timelineOptions() (*twitter.TimelineOptions, error) {
	mode, err := twitter.ParseTweetMode(tlTweetMode)
	if err != nil {
		return nil, err
	}

	opts := &twitter.TimelineOptions{
		SinceID:            tlSinceID,
		Count:              tlCount,
		MaxID:              tlMaxID,
		TrimUser:           tlTrimUser,
		ExcludeReplies:     tlExcludeReplies,
		ContributorDetails: tlContributorDetails,
		TweetMode:          mode,
	}
	if tlNoRetweets {
		include := false
		opts.IncludeRetweets = &include
	}

	return opts, nil
}

type timelineFunc func(ctx context.Context, opts *twitter.TimelineOptions) (*twitter.TimelineResponse, error)

func runTimeline(cmd *cobra.Command, name string, fetch timelineFunc) error {
	opts, err := timelineOptions()
	if err != nil {
		return err
	}

	resp, err := fetch(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to get %s timeline: %w", name, err)
	}

	return printFiltered(cmd.Context(), name, resp)
}

func runUserTimeline(cmd *cobra.Command, args []string) error {
	opts, err := timelineOptions()
	if err != nil {
		return err
	}

	userOpts := &twitter.UserTimelineOptions{
		UserID:          tlUserID,
		TimelineOptions: *opts,
	}
	if len(args) == 1 {
		userOpts.ScreenName = strings.TrimPrefix(args[0], "@")
	}

	resp, err := service.Statuses.GetUserTimeline(cmd.Context(), userOpts)
	if err != nil {
		return fmt.Errorf("failed to get user timeline: %w", err)
	}

	return printFiltered(cmd.Context(), "user", resp)
}

// printFiltered applies --filter or --preset, if set, and prints the result
func printFiltered(ctx context.Context, name string, resp *twitter.TimelineResponse) error {
	statuses := resp.Body

	logger.Debug().
		Str("timeline", name).
		Int("count", len(statuses)).
		Int("rate_limit_remaining", resp.RateLimit.Remaining).
		Msg("Fetched timeline")

	if tlAllPresets {
		matches, err := filters.EvaluateAll(ctx, statuses)
		if err != nil {
			return err
		}
		return printer.PrintPresetMatches(matches, len(statuses))
	}

	matched, err := applyFilter(ctx, statuses)
	if err != nil {
		return err
	}

	if len(matched) != len(statuses) {
		logger.Info().
			Int("fetched", len(statuses)).
			Int("matched", len(matched)).
			Msg("Filter applied")
	}

	return printer.PrintTimeline(matched)
}

func applyFilter(ctx context.Context, statuses []*twitter.StatusMessage) ([]*twitter.StatusMessage, error) {
	switch {
	case tlFilter != "":
		compiled, err := filters.Compile(tlFilter)
		if err != nil {
			return nil, err
		}
		return filters.Apply(ctx, compiled, statuses)
	case tlPreset != "":
		matched, err := filters.EvaluateFilter(ctx, strings.ToLower(tlPreset), statuses)
		if errors.Is(err, filter.ErrFilterNotFound) {
			return nil, fmt.Errorf("unknown filter preset %q (available: %s)", tlPreset, strings.Join(filters.ListFilters(), ", "))
		}
		return matched, err
	default:
		return statuses, nil
	}
}
