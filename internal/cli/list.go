package cli

import "fmt"

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	trips, err := ctx.Store.ListTrips()
	if err != nil {
		return err
	}

	if len(trips) == 0 {
		fmt.Println("No trips saved yet. Run 'planora plan' to create one.")
		return nil
	}

	anyAdjusted := false
	for _, trip := range trips {
		marker := " "
		if trip.Adjustments.Any() {
			marker = "*"
			anyAdjusted = true
		}
		fmt.Printf("%s %s  %-20s %-10s %s\n",
			marker,
			trip.CreatedAt.Format("2006-01-02"),
			trip.Itinerary.Destination,
			trip.Itinerary.Duration,
			trip.ID,
		)
	}

	if anyAdjusted {
		fmt.Println("\n* = itinerary has adjustments applied")
	}

	return nil
}
