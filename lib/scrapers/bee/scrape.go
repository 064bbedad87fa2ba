package bee

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/bee")

// a real puzzle has 20-80 answers; a broken parse produces far fewer,
// so anything under this is treated as noise and the source rejected
const minAnswerCount = 15

// Scrape walks the source chain in order and returns the first result
// that survives extraction, validation and deduction. Sources are
// tried strictly one at a time; per-source state is discarded on
// rejection and answers are never merged across sources. When every
// source fails the empty (but fully shaped) record is returned, that
// is an expected outcome and not an error.
func Scrape(ctx context.Context, client *Client, sources []Source, date time.Time) Puzzle {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()
	span.SetAttributes(attribute.String("date", date.Format(time.DateOnly)))

	for _, source := range sources {
		puzzle, err := trySource(ctx, client, source, date)
		if err != nil {
			slog.WarnContext(
				ctx, "source rejected",
				"source", source.Name,
				"err", err,
			)
			continue
		}

		slog.InfoContext(
			ctx, "accepted source",
			"source", source.Name,
			"answers", puzzle.WordCount,
			"pangrams", len(puzzle.Pangrams),
		)
		return puzzle
	}

	slog.WarnContext(ctx, "all sources exhausted, emitting empty record")
	span.SetStatus(codes.Error, "all sources exhausted")
	return EmptyPuzzle(date)
}

func trySource(ctx context.Context, client *Client, source Source, date time.Time) (Puzzle, error) {
	ctx, span := tracer.Start(ctx, "trySource")
	defer span.End()
	span.SetAttributes(attribute.String("source", source.Name))

	url := source.Url(date)
	slog.InfoContext(ctx, "trying source", "source", source.Name, "url", url)

	markup, err := client.FetchPage(ctx, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return Puzzle{}, err
	}

	words := ExtractWords(markup, source.ItemSelector)
	if len(words) < minAnswerCount {
		span.SetStatus(codes.Error, "too few candidates")
		return Puzzle{}, &RejectedError{Source: source.Name, Candidates: len(words)}
	}

	deduction, err := Deduce(words)
	if err != nil {
		// passed the count gate but the metadata is inconsistent;
		// correctness is non-negotiable so the source is dropped
		span.RecordError(err)
		span.SetStatus(codes.Error, "deduction failed")
		return Puzzle{}, err
	}

	pangrams := deduction.Pangrams
	if pangrams == nil {
		pangrams = []string{}
	}
	return Puzzle{
		Date:         date.Format(time.DateOnly),
		Letters:      deduction.Letters,
		CenterLetter: deduction.CenterLetter,
		WordCount:    len(words),
		Pangrams:     pangrams,
		Answers:      words,
	}, nil
}
