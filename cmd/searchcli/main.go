package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pixabaymcp/internal/config"
	"pixabaymcp/internal/pixabay"
	"pixabaymcp/internal/tools"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func main() {
	query := flag.String("query", "", "what to search for (required)")
	videos := flag.Bool("videos", false, "also search videos")
	perPage := flag.Int("per-page", 0, "results per search, 3-20 (default 6)")
	orientation := flag.String("orientation", "", "all, horizontal or vertical")
	safesearch := flag.Bool("safesearch", true, "only return family-friendly results")
	locale := flag.String("locale", "", "locale hint, e.g. de or pt-BR")
	asJSON := flag.Bool("json", false, "print the raw structured payload")
	flag.Parse()

	if *query == "" {
		fmt.Printf("%s❌ Error: -query is required%s\n", colorRed, colorReset)
		flag.Usage()
		os.Exit(1)
	}

	// Load .env file (silently ignore if it doesn't exist)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("%s❌ Failed to load configuration: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}

	// Results go to stdout; keep log noise on stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	client := pixabay.NewClient(pixabay.ClientConfig{
		APIKey:        cfg.PixabayAPIKey,
		ImageBaseURL:  cfg.PixabayImageBaseURL,
		VideoBaseURL:  cfg.PixabayVideoBaseURL,
		DefaultLocale: cfg.DefaultLocale,
		HTTPClient:    &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:        logger,
	})
	toolset := tools.NewToolset(tools.ToolsetConfig{
		Client:        client,
		Logger:        logger,
		DefaultLocale: cfg.DefaultLocale,
	})

	args := map[string]any{
		"query":      *query,
		"safesearch": *safesearch,
	}
	if *perPage != 0 {
		args["per_page"] = *perPage
	}
	if *orientation != "" {
		args["orientation"] = *orientation
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if *videos {
		outcome, err := toolset.RunMediaSearch(ctx, args, *locale)
		if err != nil {
			fail(err)
		}
		if *asJSON {
			printJSON(outcome.Payload)
			return
		}
		fmt.Printf("%s✓ %s%s %s(%dms)%s\n", colorGreen, outcome.Summary, colorReset, colorBlue, time.Since(start).Milliseconds(), colorReset)
		printImages(outcome.Payload.Images)
		printVideos(outcome.Payload.Videos)
		printRateLimit(outcome.RateLimit)
		return
	}

	outcome, err := toolset.RunImageSearch(ctx, args, *locale)
	if err != nil {
		fail(err)
	}
	if *asJSON {
		printJSON(outcome.Payload)
		return
	}
	fmt.Printf("%s✓ %s%s %s(%dms)%s\n", colorGreen, outcome.Summary, colorReset, colorBlue, time.Since(start).Milliseconds(), colorReset)
	printImages(outcome.Payload.Images)
	printRateLimit(outcome.RateLimit)
}

func fail(err error) {
	fmt.Printf("%s❌ %v%s\n", colorRed, err, colorReset)
	os.Exit(1)
}

func printJSON(payload any) {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(out))
}

func printImages(images []pixabay.ImageResult) {
	if len(images) == 0 {
		return
	}
	fmt.Printf("\n%sImages:%s\n", colorCyan, colorReset)
	for i, img := range images {
		fmt.Printf("%2d. %s\n", i+1, img.ImageURL)
		fmt.Printf("    %dx%d | ♥ %d | ⇓ %d | by %s\n",
			img.ImageWidth, img.ImageHeight, img.Likes, img.Downloads, img.Photographer.Name)
		if len(img.Tags) > 0 {
			fmt.Printf("    %s%s%s\n", colorYellow, strings.Join(img.Tags, ", "), colorReset)
		}
	}
}

func printVideos(videos []pixabay.VideoResult) {
	if len(videos) == 0 {
		return
	}
	fmt.Printf("\n%sVideos:%s\n", colorCyan, colorReset)
	for i, vid := range videos {
		fmt.Printf("%2d. %s\n", i+1, vid.VideoURL)
		fmt.Printf("    %s | %ds | by %s\n",
			dimensions(vid.Width, vid.Height), vid.DurationSeconds, vid.Creator.Name)
		if len(vid.Tags) > 0 {
			fmt.Printf("    %s%s%s\n", colorYellow, strings.Join(vid.Tags, ", "), colorReset)
		}
	}
}

func dimensions(width, height *int) string {
	if width == nil || height == nil {
		return "unknown size"
	}
	return fmt.Sprintf("%dx%d", *width, *height)
}

func printRateLimit(rl *pixabay.RateLimit) {
	if rl == nil {
		return
	}
	fmt.Printf("\n%sRate limit: %d/%d remaining, resets in %ds%s\n",
		colorBlue, rl.Remaining, rl.Limit, rl.ResetSeconds, colorReset)
}
