package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/julianstephens/joblit/internal/models"
)

type PrepCmd struct {
	Add    PrepAddCmd    `cmd:"" help:"Add an interview prep question."`
	List   PrepListCmd   `cmd:"" help:"List prep notes."`
	Star   PrepStarCmd   `cmd:"" help:"Toggle a prep note's star."`
	Delete PrepDeleteCmd `cmd:"" help:"Soft-delete a prep note."`
}

type PrepAddCmd struct {
	Category string `arg:"" help:"Category (screening|behavioral|technical|system_design|onsite|other)."`
	Question string `arg:"" help:"The question to prepare for."`
	Answer   string `short:"a" help:"Your prepared answer."`
	Star     bool   `short:"s" help:"Star the note."`
}

func (c *PrepAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	category := models.EventCategory(c.Category)
	if !models.ValidEventCategory(category) {
		return fmt.Errorf("invalid category: %s", c.Category)
	}

	now := nowRFC3339()
	note := models.PrepNote{
		ID:        uuid.New().String(),
		Category:  category,
		Question:  c.Question,
		Answer:    c.Answer,
		Starred:   c.Star,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ctx.Store.AddPrepNote(note); err != nil {
		return err
	}

	fmt.Printf("Added prep note (ID: %s)\n", note.ID)
	return nil
}

type PrepListCmd struct {
	Category string `short:"c" help:"Filter by category."`
	Answers  bool   `short:"a" help:"Include answers in the listing."`
}

func (c *PrepListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var category models.EventCategory
	if c.Category != "" {
		category = models.EventCategory(c.Category)
		if !models.ValidEventCategory(category) {
			return fmt.Errorf("invalid category: %s", c.Category)
		}
	}

	notes, err := ctx.Store.GetPrepNotes(category)
	if err != nil {
		return fmt.Errorf("failed to get prep notes: %w", err)
	}

	shown := 0
	for _, note := range notes {
		if note.DeletedAt != nil {
			continue
		}
		if shown == 0 {
			fmt.Println("Prep notes:")
		}
		shown++

		star := " "
		if note.Starred {
			star = "*"
		}
		fmt.Printf("%s [%s] %s\n", star, note.Category, note.Question)
		if c.Answers && note.Answer != "" {
			fmt.Printf("      %s\n", note.Answer)
		}
		fmt.Printf("      ID: %s\n", note.ID)
	}

	if shown == 0 {
		fmt.Println("No prep notes found")
	}
	return nil
}

type PrepStarCmd struct {
	ID string `arg:"" help:"Prep note ID."`
}

func (c *PrepStarCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	notes, err := ctx.Store.GetPrepNotes("")
	if err != nil {
		return fmt.Errorf("failed to get prep notes: %w", err)
	}

	for _, note := range notes {
		if note.ID != c.ID {
			continue
		}
		note.Starred = !note.Starred
		note.UpdatedAt = nowRFC3339()
		if err := ctx.Store.UpdatePrepNote(note); err != nil {
			return err
		}
		if note.Starred {
			fmt.Printf("Starred prep note %s\n", note.ID)
		} else {
			fmt.Printf("Unstarred prep note %s\n", note.ID)
		}
		return nil
	}

	return fmt.Errorf("prep note not found: %s", c.ID)
}

type PrepDeleteCmd struct {
	ID string `arg:"" help:"Prep note ID."`
}

func (c *PrepDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.DeletePrepNote(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted prep note %s\n", c.ID)
	return nil
}
