package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_perm/internal/storage"
)

var algsCmd = &cobra.Command{
	Use:   "algs",
	Short: "Manage the catalog of named algorithms",
	Long: `Store move sequences under a name together with their order, moved-facelet
count and permutation. Stored algorithms can be used anywhere a sequence is
accepted by passing @name.`,
}

var algsAddCmd = &cobra.Command{
	Use:   "add <name> <notation...>",
	Short: "Add an algorithm",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAlgsAdd,
}

var algsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List algorithms",
	Args:    cobra.NoArgs,
	RunE:    runAlgsList,
}

var algsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Describe an algorithm",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlgsShow,
}

var algsRmCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Remove an algorithm",
	Args:    cobra.ExactArgs(1),
	RunE:    runAlgsRm,
}

func init() {
	rootCmd.AddCommand(algsCmd)
	algsCmd.AddCommand(algsAddCmd)
	algsCmd.AddCommand(algsListCmd)
	algsCmd.AddCommand(algsShowCmd)
	algsCmd.AddCommand(algsRmCmd)
}

// withRepo opens the catalog, runs fn and closes it.
func withRepo(fn func(*storage.AlgorithmRepository) error) error {
	db, err := storage.OpenAndMigrate(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(storage.NewAlgorithmRepository(db))
}

// lookupAlgorithm fetches an algorithm by name, adding close matches to
// the error when it is missing.
func lookupAlgorithm(name string) (*storage.Algorithm, error) {
	var alg *storage.Algorithm
	err := withRepo(func(repo *storage.AlgorithmRepository) error {
		var err error
		alg, err = repo.Get(name)
		if errors.Is(err, storage.ErrAlgorithmNotFound) {
			return withSuggestions(repo, name, err)
		}
		return err
	})
	return alg, err
}

func withSuggestions(repo *storage.AlgorithmRepository, name string, err error) error {
	names, sErr := repo.Suggest(name, 3)
	if sErr != nil || len(names) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean %s?)", err, strings.Join(names, ", "))
}

func runAlgsAdd(cmd *cobra.Command, args []string) error {
	return withRepo(func(repo *storage.AlgorithmRepository) error {
		alg, err := repo.Create(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s (order %d, %d facelets moved)\n",
			labelStyle.Render(alg.Name), alg.Notation, alg.Order, alg.MovedCount)
		return nil
	})
}

func runAlgsList(cmd *cobra.Command, args []string) error {
	return withRepo(func(repo *storage.AlgorithmRepository) error {
		algs, err := repo.List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(algs) == 0 {
			fmt.Fprintln(out, "No algorithms stored. Add one with: gocube-perm algs add <name> <notation>")
			return nil
		}

		fmt.Fprintf(out, "%-20s  %-5s  %-5s  %-5s  %s\n", "NAME", "MOVES", "ORDER", "MOVED", "NOTATION")
		fmt.Fprintln(out, strings.Repeat("-", 60))
		for _, a := range algs {
			fmt.Fprintf(out, "%-20s  %-5d  %-5d  %-5d  %s\n", a.Name, a.MoveCount, a.Order, a.MovedCount, a.Notation)
		}
		return nil
	})
}

func runAlgsShow(cmd *cobra.Command, args []string) error {
	alg, err := lookupAlgorithm(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(alg.Name))
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Added: "), alg.CreatedAt.Local().Format("2006-01-02 15:04"))
	writeSummary(out, summarize(alg.Moves()))
	return nil
}

func runAlgsRm(cmd *cobra.Command, args []string) error {
	return withRepo(func(repo *storage.AlgorithmRepository) error {
		err := repo.Delete(args[0])
		if errors.Is(err, storage.ErrAlgorithmNotFound) {
			return withSuggestions(repo, args[0], err)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	})
}
