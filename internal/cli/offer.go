package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/utils"
)

type OfferCmd struct {
	Add    OfferAddCmd    `cmd:"" help:"Record an offer for an application."`
	List   OfferListCmd   `cmd:"" help:"List offers."`
	Status OfferStatusCmd `cmd:"" help:"Change an offer's status."`
}

type OfferAddCmd struct {
	App      string `arg:"" help:"Application ID the offer belongs to."`
	Base     string `short:"b" help:"Base salary."`
	Bonus    string `help:"Bonus."`
	Equity   string `help:"Equity."`
	Deadline string `short:"d" help:"Respond-by date (YYYY-MM-DD)."`
	Notes    string `short:"n" help:"Free-form notes."`
}

func (c *OfferAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, err := ctx.Store.GetApplication(c.App); err != nil {
		return fmt.Errorf("application %s: %w", c.App, err)
	}
	if c.Deadline != "" && !utils.ValidateDateFormat(c.Deadline) {
		return fmt.Errorf("invalid deadline %q, use YYYY-MM-DD", c.Deadline)
	}

	offer := models.Offer{
		ID:            uuid.New().String(),
		ApplicationID: c.App,
		Status:        models.OfferReceived,
		BaseSalary:    c.Base,
		Bonus:         c.Bonus,
		Equity:        c.Equity,
		Deadline:      c.Deadline,
		Notes:         c.Notes,
		CreatedAt:     nowRFC3339(),
	}

	if err := ctx.Store.AddOffer(offer); err != nil {
		return err
	}

	fmt.Printf("Added offer for %s (ID: %s)\n", applicationLabel(ctx, c.App), offer.ID)
	return nil
}

type OfferListCmd struct {
	App string `short:"a" help:"Only offers for this application ID."`
}

func (c *OfferListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var offers []models.Offer
	var err error
	if c.App != "" {
		offers, err = ctx.Store.GetOffersForApplication(c.App)
	} else {
		offers, err = ctx.Store.GetAllOffers()
	}
	if err != nil {
		return fmt.Errorf("failed to get offers: %w", err)
	}

	shown := 0
	for _, o := range offers {
		if o.DeletedAt != nil {
			continue
		}
		if shown == 0 {
			fmt.Println("Offers:")
		}
		shown++

		line := fmt.Sprintf("  [%s] %s", o.Status, applicationLabel(ctx, o.ApplicationID))
		if o.BaseSalary != "" {
			line += "  " + o.BaseSalary
		}
		if o.Deadline != "" {
			line += fmt.Sprintf("  (respond by %s)", o.Deadline)
		}
		fmt.Println(line)
		fmt.Printf("      ID: %s\n", o.ID)
	}

	if shown == 0 {
		fmt.Println("No offers found")
	}
	return nil
}

type OfferStatusCmd struct {
	ID     string `arg:"" help:"Offer ID."`
	Status string `arg:"" help:"New status (received|accepted|declined|expired)."`
}

func (c *OfferStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	status := models.OfferStatus(c.Status)
	if !models.ValidOfferStatus(status) {
		return fmt.Errorf("invalid offer status: %s", c.Status)
	}

	offers, err := ctx.Store.GetAllOffers()
	if err != nil {
		return fmt.Errorf("failed to get offers: %w", err)
	}
	for _, o := range offers {
		if o.ID != c.ID {
			continue
		}
		o.Status = status
		if err := ctx.Store.UpdateOffer(o); err != nil {
			return err
		}
		fmt.Printf("Set offer %s to %s\n", o.ID, status)
		return nil
	}

	return fmt.Errorf("offer not found: %s", c.ID)
}
