package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flightfare/farecast/config"
	"github.com/flightfare/farecast/core/model"
	"github.com/flightfare/farecast/core/predict"
	"github.com/flightfare/farecast/infra/artifact"
	"github.com/flightfare/farecast/infra/logger"
)

var predictFlags struct {
	airline  string
	from     string
	to       string
	dep      string
	arr      string
	duration float64
	stops    int
	class    string
	date     string
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run a one-shot fare prediction from the command line",
	RunE:  runPredict,
}

func init() {
	f := predictCmd.Flags()
	f.StringVar(&predictFlags.airline, "airline", "IndiGo", "airline name")
	f.StringVar(&predictFlags.from, "from", "Delhi", "source city")
	f.StringVar(&predictFlags.to, "to", "Mumbai", "destination city")
	f.StringVar(&predictFlags.dep, "dep", "10:00", "departure time (HH:MM)")
	f.StringVar(&predictFlags.arr, "arr", "12:00", "arrival time (HH:MM)")
	f.Float64Var(&predictFlags.duration, "duration", 2.0, "duration in hours")
	f.IntVar(&predictFlags.stops, "stops", 0, "total stops (0 or 1)")
	f.StringVar(&predictFlags.class, "class", "Economy", "travel class")
	f.StringVar(&predictFlags.date, "date", time.Now().Format("2006-01-02"), "journey date (YYYY-MM-DD)")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	arts, err := artifact.Load(cfg.Artifacts.Dir)
	if err != nil {
		return fmt.Errorf("load artifacts: %w", err)
	}

	date, err := time.Parse("2006-01-02", predictFlags.date)
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}

	pipe := predict.New(arts.Encoders, arts.Scaler, arts.Model, logger.NopLogger{})
	res, err := pipe.Predict(model.FlightQuery{
		Airline:         predictFlags.airline,
		SourceCity:      predictFlags.from,
		DestinationCity: predictFlags.to,
		DepartureTime:   predictFlags.dep,
		ArrivalTime:     predictFlags.arr,
		DurationHours:   predictFlags.duration,
		Stops:           predictFlags.stops,
		Class:           predictFlags.class,
		JourneyDate:     date,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Predicted fare: %s\n", res.FareDisplay)
	fmt.Printf("Route:    %s\n", res.Query.Route())
	fmt.Printf("Airline:  %s (%s)\n", res.Query.Airline, res.Query.Class)
	fmt.Printf("Duration: %.1f hours, %d stop(s)\n", res.Query.DurationHours, res.Query.Stops)
	return nil
}
