package report

import "html/template"

const headerColor = "#1a4f7a"
const altRowColor = "#f2f7fc"
const plainRowColor = "#ffffff"

const tableStyle = `border-collapse:collapse; font-family:Arial,sans-serif; font-size:13px; width:100%; max-width:1100px; border:1px solid #ccc;`

const documentTemplate = `<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif; color:#222; max-width:1100px; margin:auto; padding:20px; font-size:14px;">

  <h2 style="color:` + headerColor + `; margin-bottom:4px;">
    Flight Price Report: {{.Title}}
  </h2>
  <p style="color:#555; margin-top:0;">
    <strong>Report date:</strong> {{.ReportDate}} &nbsp;|&nbsp;
    <strong>Passengers:</strong> {{.Adults}} adult{{.AdultsSuffix}}
  </p>
  <p style="color:#555;">
    <strong>Outbound dates:</strong> {{.DepDates}}<br>
    <strong>Return dates:</strong> {{.RetDates}}<br>
    <strong>Trip types:</strong> {{.TripTypes}}<br>
    <strong>Total options found:</strong> {{.Total}}
  </p>

  <hr style="border:none; border-top:1px solid #ddd; margin:20px 0;">

{{if .Summary.Rows}}  <h3 style="color:` + headerColor + `; margin-top:0;">
    Cheapest Outbound Flight Per Destination
  </h3>
{{template "offerTable" .Summary}}{{else}}  <p style="color:#888;">No outbound flight data found.</p>
{{end}}
{{range .Blocks}}
  <hr style="border:none; border-top:1px solid #ddd; margin:32px 0;">

  <h2 style="color:` + headerColor + `; margin-top:36px;">
    {{.Title}} <span style="font-size:14px; color:#666; font-weight:normal;">({{.Subtitle}})</span>
  </h2>
{{range .Sections}}  <h3 style="color:` + headerColor + `; margin-top:28px; border-bottom:2px solid ` + headerColor + `; padding-bottom:4px;">
    {{.Flag}} {{.Name}}
    <span style="font-size:13px; color:#666; font-weight:normal;"> ({{.Route}})</span>
  </h3>
{{if .Empty}}  <p style="color:#888; font-style:italic; margin-top:4px;">No flights found.</p>
{{else}}{{template "offerTable" .Table}}{{end}}{{end}}{{end}}
  <p style="font-size:11px; color:#aaa; margin-top:32px;">
    Data source: SerpApi Google Flights.
    Prices are per person, economy class, and are approximate &ndash; confirm at booking.
    Google Flights links open a search for that route and date; final price may differ.
    Round-trip rows show the outbound leg; click Search to see full round-trip details.
    Report generated: {{.ReportDate}}.
  </p>
</body>
</html>
`

const offerTableTemplate = `  <table cellpadding="0" cellspacing="0" border="0" style="` + tableStyle + `">
    <thead>
      <tr>{{range .Headers}}<th style="padding:8px 10px; background:` + headerColor + `; color:#fff; text-align:left; white-space:nowrap;">{{.}}</th>{{end}}</tr>
    </thead>
    <tbody>
{{range .Rows}}      <tr style="background:{{.BG}};">{{range .Cells}}{{.}}{{end}}</tr>
{{end}}    </tbody>
  </table>
`

var documentTmpl = template.Must(
	template.Must(template.New("document").Parse(documentTemplate)).
		New("offerTable").Parse(offerTableTemplate),
)
