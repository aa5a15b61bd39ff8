package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

func (a *App) printReviews(reviews []models.Review) {
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, a.styles.muted.Render("No reviews yet."))
		return
	}
	fmt.Fprintln(a.out, "Reviews:")
	for _, r := range reviews {
		line := fmt.Sprintf("  %s %s", strings.Repeat("*", r.Rating), r.Author())
		if r.Comment != "" {
			line += ": " + r.Comment
		}
		fmt.Fprintln(a.out, line)
	}
}

// Review rates a product from 1 to 5 with an optional comment.
func (a *App) Review(ctx context.Context, productID, rating, comment string) error {
	id, err := a.parseID("product", productID)
	if err != nil {
		return err
	}
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to review products.")
		return nil
	}
	stars, err := strconv.Atoi(rating)
	if err != nil || stars < 1 || stars > 5 {
		fmt.Fprintf(a.out, "Invalid rating: %s\n", rating)
		return ErrInvalidRating
	}

	if _, err := a.shop.AddReview(ctx, id, models.ReviewRequest{Rating: stars, Comment: comment}); err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Thanks! Your %d-star review of product %d is saved.\n", stars, id)
	return nil
}
