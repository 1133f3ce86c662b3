package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gamedb/gamescout/pkg/aggregator"
	"github.com/gamedb/gamescout/pkg/helpers"
	"github.com/gamedb/gamescout/pkg/hltb"
	"github.com/gamedb/gamescout/pkg/igdb"
	"github.com/gamedb/gamescout/pkg/itad"
	"github.com/gamedb/gamescout/pkg/log"
	"github.com/gamedb/gamescout/pkg/opencritic"
	"github.com/montanaflynn/stats"
)

var popular = flag.Int("popular", 0, "list the pricing provider's most popular games instead of looking titles up")

func main() {

	flag.Parse()

	log.InitZap(log.LogNameScout)
	defer log.Flush()

	pricing, err := itad.NewClient()
	if err != nil {
		log.FatalS(err)
	}

	if *popular > 0 {
		showPopular(pricing, *popular)
		return
	}

	catalog, err := igdb.NewClient()
	if err != nil {
		log.FatalS(err)
	}

	agg := aggregator.New(catalog, pricing, opencritic.NewClient(), hltb.NewClient())

	titles := flag.Args()
	if len(titles) == 0 {

		fmt.Println("Enter a game:")

		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			titles = append(titles, strings.TrimSpace(scanner.Text()))
		}
	}

	for _, title := range titles {
		agg.AddGame(title)
	}

	for _, record := range agg.Records() {
		printRecord(record)
	}

	tally := agg.GenreTally()
	if len(tally) > 0 {
		fmt.Println("Genres seen:")
		for genre, count := range tally {
			fmt.Println("  " + genre + ": " + helpers.CommaInt(count))
		}
	}
}

func printRecord(record aggregator.GameRecord) {

	fmt.Println("=====" + record.Name + "=====")
	fmt.Println("Genre: " + strings.Join(record.Genres, ", "))
	fmt.Println("Developed by: " + strings.Join(record.Developers, ", "))
	fmt.Println("Published by: " + strings.Join(record.Publishers, ", "))

	if record.Series.Name != aggregator.NoSeries {
		fmt.Println("Part of: " + record.Series.Name)
	}

	if record.Prices.Current != aggregator.Unknown {
		fmt.Println("Current low: $" + helpers.FloatToString(record.Prices.Current, 2) + " at " + strings.Join(record.Prices.Stores, ", "))
	}

	if record.Prices.Lowest != aggregator.Unknown {
		fmt.Println("Historic low: $" + helpers.FloatToString(helpers.RoundFloatTo2DP(record.Prices.Lowest), 2))
	}

	if record.CompletionHours != aggregator.Unknown {
		fmt.Println("Average time to beat: " + helpers.FloatToString(record.CompletionHours, 1) + " hrs")
	}

	if record.ReviewScore != aggregator.Unknown {
		fmt.Println("Critic score: " + strconv.Itoa(record.ReviewScore))
	}
}

// showPopular mirrors the pricing provider's popularity chart, with each
// game's review summary and historic low. Price lookups run in paced batches.
func showPopular(pricing *itad.Client, limit int) {

	plains, err := pricing.PopularPlains(limit)
	if err != nil {
		log.FatalS(err)
	}

	infos, err := pricing.GameInfo(plains)
	if err != nil {
		log.ErrS(err)
	}

	fmt.Println("Loading price data. This might take a while to avoid exceeding rate limit")

	lows, err := pricing.LoadHistoricalLows(plains)
	if err != nil {
		log.ErrS(err)
	}

	for i, plain := range plains {

		info := infos[plain]

		line := strconv.Itoa(i+1) + ". " + info.Title

		if samples := lows[plain]; len(samples) > 0 {
			min, err := stats.Min(samples)
			if err == nil {
				line += ", low $" + helpers.FloatToString(min, 2)
			}
		}

		if info.Metacritic.CriticScore > 0 {
			line += ", metacritic " + fmt.Sprint(info.Metacritic.CriticScore)
		}

		fmt.Println(line)
	}
}
