package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/utils"
)

type RefCmd struct {
	Add       RefAddCmd       `cmd:"" help:"Add a reference or networking contact."`
	List      RefListCmd      `cmd:"" help:"List references."`
	Contacted RefContactedCmd `cmd:"" help:"Record when a reference was last contacted."`
	Delete    RefDeleteCmd    `cmd:"" help:"Soft-delete a reference."`
}

type RefAddCmd struct {
	Name         string `arg:"" help:"Contact name."`
	Relationship string `short:"r" help:"Relationship (former manager, colleague, ...)."`
	Company      string `short:"c" help:"Contact's company."`
	Email        string `short:"e" help:"Email address."`
	Phone        string `short:"p" help:"Phone number."`
	Notes        string `short:"n" help:"Free-form notes."`
}

func (c *RefAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ref := models.Reference{
		ID:           uuid.New().String(),
		Name:         c.Name,
		Relationship: c.Relationship,
		Company:      c.Company,
		Email:        c.Email,
		Phone:        c.Phone,
		Notes:        c.Notes,
		CreatedAt:    nowRFC3339(),
	}

	if err := ctx.Store.AddReference(ref); err != nil {
		return err
	}

	fmt.Printf("Added reference: %s (ID: %s)\n", c.Name, ref.ID)
	return nil
}

type RefListCmd struct{}

func (c *RefListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	refs, err := ctx.Store.GetAllReferences()
	if err != nil {
		return fmt.Errorf("failed to get references: %w", err)
	}

	shown := 0
	for _, ref := range refs {
		if ref.DeletedAt != nil {
			continue
		}
		if shown == 0 {
			fmt.Println("References:")
		}
		shown++

		line := "  " + ref.Name
		if ref.Relationship != "" {
			line += fmt.Sprintf(" (%s", ref.Relationship)
			if ref.Company != "" {
				line += " at " + ref.Company
			}
			line += ")"
		} else if ref.Company != "" {
			line += fmt.Sprintf(" (%s)", ref.Company)
		}
		if ref.LastContactedDate != "" {
			line += "  last contacted " + ref.LastContactedDate
		}
		fmt.Println(line)
		fmt.Printf("      ID: %s\n", ref.ID)
	}

	if shown == 0 {
		fmt.Println("No references found")
	}
	return nil
}

type RefContactedCmd struct {
	ID   string `arg:"" help:"Reference ID."`
	Date string `short:"d" help:"Contact date (YYYY-MM-DD), defaults to today."`
}

func (c *RefContactedCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	refs, err := ctx.Store.GetAllReferences()
	if err != nil {
		return fmt.Errorf("failed to get references: %w", err)
	}

	date := c.Date
	if date == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if date, err = utils.GetTodayInTimezone(settings.Timezone); err != nil {
			return err
		}
	} else if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", date)
	}

	for _, ref := range refs {
		if ref.ID != c.ID {
			continue
		}
		ref.LastContactedDate = date
		if err := ctx.Store.UpdateReference(ref); err != nil {
			return err
		}
		fmt.Printf("Recorded contact with %s on %s\n", ref.Name, date)
		return nil
	}

	return fmt.Errorf("reference not found: %s", c.ID)
}

type RefDeleteCmd struct {
	ID string `arg:"" help:"Reference ID."`
}

func (c *RefDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.DeleteReference(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted reference %s\n", c.ID)
	return nil
}
