package cli

type ShowCmd struct {
	ID string `arg:"" optional:"" help:"Trip ID to show (defaults to the most recent trip)."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	trip, err := loadTrip(ctx, c.ID)
	if err != nil {
		return err
	}

	printItinerary(trip)
	return nil
}
