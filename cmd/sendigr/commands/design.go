package commands

import (
	"github.com/spf13/cobra"

	"github.com/ksny/sendigR/config"
	"github.com/ksny/sendigR/dataset"
	"github.com/ksny/sendigR/errors"
	"github.com/ksny/sendigR/logger"
	"github.com/ksny/sendigR/sendfilter"
)

// DesignCmd represents the design command
var DesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Resolve and filter studies by study design",
	Long: `Resolve the study design for every study in the database and
optionally filter to a requested set of designs.

The design is taken from the study-level TS parameter SDESIGN. Without
-d/--design the full study list is printed with a NOT_VALID_MSG column
reporting missing, ambiguous or invalid resolutions.

Examples:
  sendigr design                        # All studies with validity report
  sendigr design -d PARALLEL            # Parallel-design studies
  sendigr design -d CROSSOVER --uncertain`,
	RunE: runDesign,
}

var (
	designTargetsFlag     []string
	designStudiesFlag     []string
	designUncertainFlag   bool
	designExclusivelyFlag bool
	designNoReportFlag    bool
	designJSONFlag        bool
)

func init() {
	DesignCmd.Flags().StringArrayVarP(&designTargetsFlag, "design", "d", nil, "Target design value (repeatable; enables filtering)")
	DesignCmd.Flags().StringArrayVar(&designStudiesFlag, "study", nil, "Restrict to this study (repeatable)")
	DesignCmd.Flags().BoolVar(&designUncertainFlag, "uncertain", false, "Also include studies whose design resolution is uncertain")
	DesignCmd.Flags().BoolVar(&designExclusivelyFlag, "exclusively", true, "Drop studies exhibiting any design outside the target set")
	DesignCmd.Flags().BoolVar(&designNoReportFlag, "no-report", false, "Suppress the NOT_VALID_MSG column on unfiltered output")
	DesignCmd.Flags().BoolVarP(&designJSONFlag, "json", "j", false, "Output the result table as JSON")
}

func runDesign(cmd *cobra.Command, args []string) error {
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

	// Nil study list means every study in the database
	var studies *dataset.Table
	if len(designStudiesFlag) > 0 {
		studies = dataset.New(sendfilter.ColStudyID)
		for _, id := range designStudiesFlag {
			studies.Append(dataset.Row{sendfilter.ColStudyID: id})
		}
	}

	result, err := svc.StudyDesign(studies, sendfilter.DesignOptions{
		TargetValues:              designTargetsFlag,
		InclUncertain:             designUncertainFlag,
		Exclusively:               designExclusivelyFlag,
		ReportUncertainIfNoFilter: !designNoReportFlag,
	})
	if err != nil {
		return errors.Wrap(err, "design filter failed")
	}

	return printTable(result, designJSONFlag)
}
