package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ksny/sendigR/config"
	"github.com/ksny/sendigR/dataset"
	"github.com/ksny/sendigR/errors"
	"github.com/ksny/sendigR/logger"
	"github.com/ksny/sendigR/sendfilter"
)

// RouteCmd represents the route command
var RouteCmd = &cobra.Command{
	Use:   "route",
	Short: "Resolve and filter animals by route of administration",
	Long: `Resolve the route of administration for every animal in the study
database and optionally filter to a requested set of routes.

Each animal's route is taken from its EX.EXROUTE records; when those are
absent or ambiguous the study-level TS parameter ROUTE applies. Without
-r/--route the full animal list is printed with a NOT_VALID_MSG column
reporting missing, ambiguous, invalid or conflicting resolutions.

Examples:
  sendigr route                              # All animals with validity report
  sendigr route -r ORAL                      # Animals dosed orally
  sendigr route -r ORAL -r "ORAL GAVAGE" --match-all
  sendigr route -r SUBCUTANEOUS --exclusively --uncertain
  sendigr route --study S1 --study S2        # Restrict to given studies`,
	RunE: runRoute,
}

var (
	routeTargetsFlag     []string
	routeStudiesFlag     []string
	routeUncertainFlag   bool
	routeExclusivelyFlag bool
	routeMatchAllFlag    bool
	routeNoReportFlag    bool
	routeJSONFlag        bool
)

func init() {
	RouteCmd.Flags().StringArrayVarP(&routeTargetsFlag, "route", "r", nil, "Target route value (repeatable; enables filtering)")
	RouteCmd.Flags().StringArrayVar(&routeStudiesFlag, "study", nil, "Restrict to animals of this study (repeatable)")
	RouteCmd.Flags().BoolVar(&routeUncertainFlag, "uncertain", false, "Also include animals whose route resolution is uncertain")
	RouteCmd.Flags().BoolVar(&routeExclusivelyFlag, "exclusively", false, "Drop studies exhibiting any route outside the target set")
	RouteCmd.Flags().BoolVar(&routeMatchAllFlag, "match-all", false, "Keep only studies exhibiting every target route")
	RouteCmd.Flags().BoolVar(&routeNoReportFlag, "no-report", false, "Suppress the NOT_VALID_MSG column on unfiltered output")
	RouteCmd.Flags().BoolVarP(&routeJSONFlag, "json", "j", false, "Output the result table as JSON")
}

func runRoute(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	database, err := openDatabase(dbPath)
	if err != nil {
		return err
	}
	defer database.Close()

	svc := sendfilter.NewService(database, logger.Logger)
	if cfg, err := config.Load(); err == nil {
		svc.SetCodelists(cfg.CT.RouteCodelist, cfg.CT.DesignCodelist)
	}

	animals, err := animalTable(svc, routeStudiesFlag)
	if err != nil {
		return err
	}

	result, err := svc.SubjRoute(animals, sendfilter.RouteOptions{
		TargetValues:              routeTargetsFlag,
		InclUncertain:             routeUncertainFlag,
		Exclusively:               routeExclusivelyFlag,
		MatchAll:                  routeMatchAllFlag,
		ReportUncertainIfNoFilter: !routeNoReportFlag,
	})
	if err != nil {
		return errors.Wrap(err, "route filter failed")
	}

	return printTable(result, routeJSONFlag)
}

// animalTable builds the input animal list from DM, optionally restricted
// to the given studies.
func animalTable(svc *sendfilter.Service, studyIDs []string) (*dataset.Table, error) {
	animals, err := svc.Store().FetchAnimals(studyIDs)
	if err != nil {
		return nil, err
	}

	table := dataset.New(sendfilter.ColStudyID, sendfilter.ColUSubjID)
	for _, a := range animals {
		table.Append(dataset.Row{
			sendfilter.ColStudyID: a.StudyID,
			sendfilter.ColUSubjID: a.USubjID,
		})
	}
	return table, nil
}

func printTable(t *dataset.Table, asJSON bool) error {
	if asJSON {
		output, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode result")
		}
		fmt.Println(string(output))
		return nil
	}

	columns := t.Columns()
	data := pterm.TableData{columns}
	for _, row := range t.Rows() {
		line := make([]string, len(columns))
		for i, col := range columns {
			line[i] = row[col]
		}
		data = append(data, line)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	pterm.Printf("%d row(s)\n", t.Len())
	return nil
}
