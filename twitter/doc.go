// Package twitter provides a client for the Twitter v1.1 REST API.
//
// The package covers the statuses resource (lookup, posting, retweeting,
// deleting and the user, home, mentions and retweets-of-me timelines) and the
// geo resource (reverse geocoding and place lookup).
//
// # Architecture
//
// The package is organized in layers:
//
//   - Client: performs the literal HTTP call and returns a raw Response
//   - Raw endpoints: one method per API operation, encoding options into parameters
//   - Endpoints: call the raw layer and parse the JSON into typed models
//   - Options: one struct per operation, encoded into query parameters
//   - Models: StatusMessage, User, Entities, Place and reverse geocode results
//
// # Usage
//
// Create an authenticated http.Client, a Client and a Service:
//
//	httpClient, err := twitter.NewUserHTTPClient(ctx, twitter.UserCredentials{
//		ConsumerKey:       "key",
//		ConsumerSecret:    "secret",
//		AccessToken:       "token",
//		AccessTokenSecret: "token-secret",
//	}, 30*time.Second)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := twitter.NewClient(httpClient, zerolog.New(os.Stderr))
//	if err != nil {
//		log.Fatal(err)
//	}
//	service := twitter.NewService(client)
//
//	timeline, err := service.Statuses.GetUserTimeline(ctx, &twitter.UserTimelineOptions{
//		ScreenName:      "golang",
//		TimelineOptions: twitter.TimelineOptions{Count: 20, TweetMode: twitter.TweetModeExtended},
//	})
//
// # Options
//
// A parameter is sent only when its option differs from the API default.
// Numeric options are sent when positive, boolean options when true, and
// the options that default to true on the API side (IncludeRetweets,
// IncludeEntities) are pointers that are sent only when explicitly false.
//
// # Error Handling
//
// Parsing never returns a partially populated object. A response with a
// status other than 200 becomes an *APIError:
//
//	var apiErr *twitter.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Handle missing status
//	}
//
// Arguments are checked before any request is made; ErrMissingArgument,
// ErrInvalidOptions and ErrNilStatus are returned without network traffic.
package twitter
