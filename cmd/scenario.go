package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/config"
	"github.com/theirongolddev/amort/internal/loan"
	"github.com/theirongolddev/amort/internal/store"

	"github.com/spf13/cobra"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage saved loan scenarios",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the current loan parameters under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioSave,
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios",
	RunE:  runScenarioList,
}

var scenarioShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the summary of a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioShow,
}

var scenarioRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenarioRm,
}

func init() {
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioShowCmd, scenarioRmCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func openStore() (*store.Store, error) {
	return store.Open(config.ScenarioDBPath())
}

func runScenarioSave(cmd *cobra.Command, args []string) error {
	l, extra, extras, err := buildInputs(cmd)
	if err != nil {
		return err
	}
	s, err := loan.Compute(l, extras)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sc := store.Scenario{
		Name:           args[0],
		Loan:           l,
		Extra:          extra,
		TotalCost:      s.Totals.TotalCost,
		TotalInterest:  s.Totals.TotalInterest,
		CompletedTerms: s.Totals.CompletedTerms,
	}
	if err := st.Save(sc); err != nil {
		return err
	}

	fmt.Printf("  Saved scenario %q (%s total cost, %s)\n",
		sc.Name,
		cli.FormatMoneyShort(sc.TotalCost),
		cli.FormatTerms(sc.CompletedTerms, l.Terms))
	return nil
}

func runScenarioList(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	scenarios, err := st.List()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Println("\n  No saved scenarios. Use `amort scenario save <name>`.")
		return nil
	}

	fmt.Println()
	rows := make([][]string, 0, len(scenarios))
	for _, sc := range scenarios {
		rows = append(rows, []string{
			sc.Name,
			cli.FormatMoneyShort(sc.Loan.Principal),
			cli.FormatRate(sc.Loan.NominalRate),
			cli.FormatTerms(sc.CompletedTerms, sc.Loan.Terms),
			cli.FormatMoneyShort(sc.TotalInterest),
			cli.FormatMoneyShort(sc.TotalCost),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Principal", "Rate", "Terms", "Interest", "Total Cost"},
		Rows:    rows,
	}))
	return nil
}

func runScenarioShow(_ *cobra.Command, args []string) error {
	sc, err := loadScenario(args[0])
	if err != nil {
		return err
	}

	s, err := loan.Compute(sc.Loan, sc.Extra.Payments(sc.Loan.FirstDueDate()))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SCENARIO  %s", sc.Name)))
	fmt.Println()
	fmt.Print(cli.RenderTable(summaryTable(s)))
	return nil
}

func runScenarioRm(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(args[0]); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no scenario named %q", args[0])
		}
		return err
	}
	fmt.Printf("  Deleted scenario %q\n", args[0])
	return nil
}
