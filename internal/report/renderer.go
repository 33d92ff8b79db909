package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"flight-report/internal/config"
	"flight-report/internal/models"
	"flight-report/internal/ranking"
)

// Params carries the run-level settings the renderer stamps into the
// document. ReportDate is the only non-deterministic input.
type Params struct {
	Origin       string
	RegionLabel  string
	Destinations []config.Destination
	Currency     string
	Adults       int
	ReportDate   string
}

type rowView struct {
	BG    string
	Cells []template.HTML
}

type tableView struct {
	Headers []string
	Rows    []rowView
}

type sectionView struct {
	Flag  string
	Name  string
	Route string
	Empty bool
	Table tableView
}

type blockView struct {
	Title    string
	Subtitle string
	Sections []sectionView
}

type documentView struct {
	Title        string
	ReportDate   string
	Adults       int
	AdultsSuffix string
	DepDates     string
	RetDates     string
	TripTypes    string
	Total        int
	Summary      tableView
	Blocks       []blockView
}

// Render builds the full HTML report from the aggregated offers. It is pure
// and deterministic: the same inputs produce byte-identical output.
func Render(
	results models.Results,
	depDates, retDates []string,
	tripTypes []models.TripType,
	p Params,
) (string, error) {
	retStr := "N/A"
	if len(retDates) > 0 {
		retStr = strings.Join(retDates, ", ")
	}

	adultsSuffix := "s"
	if p.Adults == 1 {
		adultsSuffix = ""
	}

	doc := documentView{
		Title:        p.Origin + " ↔ " + p.RegionLabel,
		ReportDate:   p.ReportDate,
		Adults:       p.Adults,
		AdultsSuffix: adultsSuffix,
		DepDates:     strings.Join(depDates, ", "),
		RetDates:     retStr,
		TripTypes:    joinTripTypes(tripTypes),
		Total:        results.Total(),
		Summary:      summaryTable(results, depDates, p),
	}

	for _, tt := range tripTypes {
		doc.Blocks = append(doc.Blocks, tripTypeBlock(tt, results[tt], p))
	}

	var buf bytes.Buffer
	if err := documentTmpl.ExecuteTemplate(&buf, "document", doc); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return buf.String(), nil
}

// summaryTable selects the cheapest outbound offer per (date, destination)
// pair. Dates in search order, destinations in configured order; pairs with
// no offers are omitted. The first surviving row of each date is striped.
func summaryTable(results models.Results, depDates []string, p Params) tableView {
	outbound := results[models.TripOutbound]

	table := tableView{
		Headers: []string{
			"Departure Date", "Destination", "Airline(s)",
			"Departs (" + p.Origin + ")", "Arrives", "Duration", "Stops", "Via",
			"Best Price (" + p.Currency + ")", "Book",
		},
	}

	for _, date := range depDates {
		first := true
		for _, dest := range p.Destinations {
			var onDate []models.Offer
			for _, o := range outbound[dest.Name] {
				if o.DepartureDate == date {
					onDate = append(onDate, o)
				}
			}
			cheapest, ok := ranking.Cheapest(onDate)
			if !ok {
				continue
			}

			bg := plainRowColor
			if first {
				bg = altRowColor
			}
			first = false

			table.Rows = append(table.Rows, rowView{
				BG: bg,
				Cells: []template.HTML{
					td(date),
					td(strings.TrimSpace(dest.Flag + " " + dest.Name)),
					td(cheapest.Airlines),
					td(cheapest.DepartTime),
					tdArrival(cheapest),
					td(cheapest.Duration),
					td(cheapest.Stops),
					td(cheapest.Via),
					tdBold(cheapest.Currency + " " + cheapest.PriceStr),
					tdLink(cheapest.BookURL, "Search"),
				},
			})
		}
	}

	return table
}

func tripTypeBlock(tt models.TripType, byDest map[string][]models.Offer, p Params) blockView {
	block := blockView{}
	switch tt {
	case models.TripOutbound:
		block.Title = "Outbound Flights"
		block.Subtitle = p.Origin + " → " + p.RegionLabel
	case models.TripReturn:
		block.Title = "Return Flights"
		block.Subtitle = p.RegionLabel + " → " + p.Origin
	case models.TripRoundTrip:
		block.Title = "Round Trip Flights"
		block.Subtitle = p.Origin + " ↔ " + p.RegionLabel + " (total price, outbound leg shown)"
	}

	for _, dest := range p.Destinations {
		offers := byDest[dest.Name]

		section := sectionView{
			Flag: dest.Flag,
			Name: dest.Name,
		}

		switch tt {
		case models.TripReturn:
			section.Route = dest.Code + " → " + p.Origin
		case models.TripRoundTrip:
			section.Route = p.Origin + " ↔ " + dest.Code
		default:
			section.Route = p.Origin + " → " + dest.Code
		}

		if len(offers) == 0 {
			section.Empty = true
			block.Sections = append(block.Sections, section)
			continue
		}

		if tt == models.TripRoundTrip {
			section.Table = roundTripTable(offers, p)
		} else {
			depLabel, arrLabel := p.Origin, dest.Code
			if tt == models.TripReturn {
				depLabel, arrLabel = dest.Code, p.Origin
			}
			section.Table = oneWayTable(offers, depLabel, arrLabel, p)
		}
		block.Sections = append(block.Sections, section)
	}

	return block
}

func oneWayTable(offers []models.Offer, depLabel, arrLabel string, p Params) tableView {
	table := tableView{
		Headers: []string{
			"Dep. Date", "Airline(s)",
			"Departs (" + depLabel + ")", "Arrives (" + arrLabel + ")",
			"Duration", "Stops", "Via", "Price (" + p.Currency + ")", "Book",
		},
	}
	for i, o := range ranking.SortOneWay(offers) {
		table.Rows = append(table.Rows, rowView{
			BG: stripe(i),
			Cells: []template.HTML{
				td(o.DepartureDate),
				td(o.Airlines),
				td(o.DepartTime),
				tdArrival(o),
				td(o.Duration),
				td(o.Stops),
				td(o.Via),
				tdBold(o.Currency + " " + o.PriceStr),
				tdLink(o.BookURL, "Search"),
			},
		})
	}
	return table
}

func roundTripTable(offers []models.Offer, p Params) tableView {
	table := tableView{
		Headers: []string{
			"Departs", "Returns", "Airline(s)", "Dep. Time", "Arr. Time",
			"Outbound Duration", "Stops", "Via", "Total Price (" + p.Currency + ")", "Book",
		},
	}
	for i, o := range ranking.SortRoundTrip(offers) {
		table.Rows = append(table.Rows, rowView{
			BG: stripe(i),
			Cells: []template.HTML{
				td(o.DepartureDate),
				td(o.ReturnDate),
				td(o.Airlines),
				td(o.DepartTime),
				tdArrival(o),
				td(o.Duration),
				td(o.Stops),
				td(o.Via),
				tdBold(o.Currency + " " + o.PriceStr),
				tdLink(o.BookURL, "Search"),
			},
		})
	}
	return table
}

func stripe(i int) string {
	if i%2 == 0 {
		return altRowColor
	}
	return plainRowColor
}

// Cell builders mirror the inline-styled cells of the email layout. Text is
// escaped here, so the resulting fragments are safe to mark as HTML.

func td(text string) template.HTML {
	return template.HTML(`<td style="padding:7px 10px; white-space:nowrap;">` +
		template.HTMLEscapeString(text) + `</td>`)
}

func tdBold(text string) template.HTML {
	return template.HTML(`<td style="padding:7px 10px; font-weight:bold; white-space:nowrap;">` +
		template.HTMLEscapeString(text) + `</td>`)
}

func tdLink(url, label string) template.HTML {
	return template.HTML(`<td style="padding:7px 10px; white-space:nowrap;">` +
		`<a href="` + template.HTMLEscapeString(url) + `" target="_blank" style="color:` + headerColor + `; font-weight:bold;">` +
		template.HTMLEscapeString(label) + `</a></td>`)
}

// tdArrival appends a "+1" badge when the leg lands on a later calendar day
// than it departed.
func tdArrival(o models.Offer) template.HTML {
	cell := template.HTMLEscapeString(o.ArriveTime)
	if o.ArriveDate != "" && o.ArriveDate != o.DepartureDate {
		cell += `<sup style="color:#c0392b; font-size:9px; margin-left:2px;">+1</sup>`
	}
	return template.HTML(`<td style="padding:7px 10px; white-space:nowrap;">` + cell + `</td>`)
}

func joinTripTypes(tripTypes []models.TripType) string {
	parts := make([]string, 0, len(tripTypes))
	for _, tt := range tripTypes {
		parts = append(parts, string(tt))
	}
	return strings.Join(parts, ", ")
}
