package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gemgeek/alx-listing-app-deployed/internal/apiclient"
	"github.com/gemgeek/alx-listing-app-deployed/internal/controller"
	"github.com/gemgeek/alx-listing-app-deployed/internal/domain"
)

const (
	listFallback    = "An unknown error occurred"
	detailsFallback = "Could not load property details."
	reviewsFallback = "Could not load reviews."
)

var errUsage = errors.New("usage error")

func listPage(ctx context.Context, client *apiclient.Client, out io.Writer) error {
	f := controller.NewFetcher(func(ctx context.Context, _ struct{}) ([]domain.Property, error) {
		return client.ListProperties(ctx)
	}, listFallback)

	f.Subscribe(func(s controller.State) {
		switch st := s.(type) {
		case controller.Loading[struct{}]:
			fmt.Fprintln(out, "Loading properties...")
		case controller.Success[struct{}, []domain.Property]:
			if len(st.Data) == 0 {
				fmt.Fprintln(out, "No properties available.")
			}
			for _, p := range st.Data {
				writeProperty(out, p)
			}
		case controller.Failure[struct{}]:
			fmt.Fprintf(out, "Error: %s\n", st.Message)
		}
	})

	if _, ok := f.Load(ctx, struct{}{}).(controller.Failure[struct{}]); ok {
		return errPageFailed
	}
	return nil
}

// showPage loads the property and its reviews side by side, the way the
// detail page does.
func showPage(ctx context.Context, client *apiclient.Client, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(errOut)
	id := fs.String("id", "", "property id")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *id == "" {
		fmt.Fprintln(errOut, "show: -id is required")
		return errUsage
	}

	property := controller.NewFetcher(client.GetProperty, detailsFallback)
	reviews := controller.NewFetcher(client.ListReviews, reviewsFallback)

	var (
		wg        sync.WaitGroup
		propState controller.State
		revState  controller.State
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		propState = property.Load(ctx, *id)
	}()
	go func() {
		defer wg.Done()
		revState = reviews.Load(ctx, *id)
	}()

	fmt.Fprintln(out, "Loading property...")
	wg.Wait()

	failed := false
	switch st := propState.(type) {
	case controller.Success[string, *domain.Property]:
		writeProperty(out, *st.Data)
	case controller.Failure[string]:
		fmt.Fprintf(out, "Error: %s\n", st.Message)
		failed = true
	}

	fmt.Fprintln(out, "\nReviews")
	switch st := revState.(type) {
	case controller.Success[string, []domain.Review]:
		if len(st.Data) == 0 {
			fmt.Fprintln(out, "No reviews yet.")
		}
		for _, r := range st.Data {
			fmt.Fprintf(out, "  %s %s\n    %s\n", stars(r.Rating), r.User, r.Comment)
		}
	case controller.Failure[string]:
		fmt.Fprintf(out, "Error: %s\n", st.Message)
		failed = true
	}

	if failed {
		return errPageFailed
	}
	return nil
}

func bookPage(ctx context.Context, client *apiclient.Client, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fields := []struct {
		flag, field, usage string
	}{
		{"first", "firstName", "first name (required)"},
		{"last", "lastName", "last name (required)"},
		{"email", "email", "email address (required)"},
		{"phone", "phoneNumber", "phone number"},
		{"card", "cardNumber", "card number"},
		{"exp", "expirationDate", "card expiration date (MM/YY)"},
		{"cvv", "cvv", "card CVV"},
		{"address", "billingAddress", "billing address"},
	}
	values := make([]*string, len(fields))
	for i, f := range fields {
		values[i] = fs.String(f.flag, "", f.usage)
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	form := controller.NewBookingForm(client)
	for i, f := range fields {
		if err := form.Set(f.field, *values[i]); err != nil {
			return fmt.Errorf("set %s: %w", f.field, err)
		}
	}

	form.Subscribe(func(s controller.FormState) {
		if s.Status == controller.Submitting {
			fmt.Fprintln(out, "Submitting booking...")
		}
	})

	st, err := form.Submit(ctx)
	if err != nil {
		return err
	}

	if st.Status == controller.Confirmed {
		fmt.Fprintln(out, "Thank You!")
		fmt.Fprintln(out, st.Success())
		return nil
	}

	fmt.Fprintf(out, "Error: %s\n", st.Error)
	return errPageFailed
}

func writeProperty(out io.Writer, p domain.Property) {
	fmt.Fprintf(out, "[%s] %s\n    %s | $%.0f/night | %s %.1f\n", p.ID, p.Name, p.Location, p.Price, stars(int(p.Rating+0.5)), p.Rating)
}

func stars(n int) string {
	n = max(0, min(n, domain.MaxReviewRating))
	return strings.Repeat("★", n) + strings.Repeat("☆", domain.MaxReviewRating-n)
}
