package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/games/memory"
	"github.com/vovakirdan/tui-memory/internal/registry"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [deck]",
	Short: "Show best results",
	Long: `Display the 10 best results (fastest, then fewest moves) for a deck.
Without a deck, shows a summary for every deck that has results.
With --clear, deletes every result recorded for the deck instead.

Examples:
  memory scores
  memory scores starwars
  memory scores starwars --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results of the given deck")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagClear && len(args) == 0 {
		return errors.New("--clear needs a deck id")
	}

	path := config.ExpandHome(settings.DBPath)
	if path == "" {
		return errors.New("results are disabled (empty db_path)")
	}
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printDeckSummary(store)
	}
	if flagClear {
		return clearResults(store, args[0])
	}
	return printBestResults(store, args[0])
}

func printBestResults(store *storage.Store, deckID string) error {
	title := deckID
	if deck, err := registry.Create(deckID); err == nil {
		title = deck.Title
	}

	results, err := store.BestResults(deckID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'memory play %s' to set the first one!\n", deckID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Time", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "----", "-----", "----")

	for i, r := range results {
		fmt.Printf("  %-4d  %-8s  %-5d  %s\n",
			i+1, memory.FormatElapsed(r.Elapsed.Seconds()), r.Moves, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetDeckStats(deckID); err == nil {
		fmt.Println()
		fmt.Printf("Games won: %d   Average moves: %.1f\n", stats.GamesCount, stats.AvgMoves)
	}
	return nil
}

func printDeckSummary(store *storage.Store) error {
	all, err := store.GetAllDeckStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-5s  %-8s  %-6s  %s\n", "Deck", "Games", "Best", "Fewest", "Last played")
	fmt.Printf("  %-12s  %-5s  %-8s  %-6s  %s\n", "----", "-----", "----", "------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-12s  %-5d  %-8s  %-6d  %s\n",
			id, s.GamesCount, memory.FormatElapsed(s.BestElapsed.Seconds()), s.FewestMoves,
			s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'memory scores <deck>' for the full list.")
	return nil
}

func clearResults(store *storage.Store, deckID string) error {
	if err := store.ClearResults(deckID); err != nil {
		return err
	}
	fmt.Printf("Results cleared for %s.\n", deckID)
	return nil
}
