// Package web renders the single-page fare prediction form. The page
// posts back to itself and shows either the fare summary or the error
// message; all choices come from the loaded vocabularies.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/flightfare/farecast/core/logger"
	coremetrics "github.com/flightfare/farecast/core/metrics"
	"github.com/flightfare/farecast/core/model"
	"github.com/flightfare/farecast/core/predict"
	"github.com/flightfare/farecast/internal/eventbus"
)

const dateLayout = "2006-01-02"

// Form serves the HTML prediction page.
type Form struct {
	pipe *predict.Pipeline
	bus  eventbus.EventBus
	log  logger.Logger
	tmpl *template.Template
}

// NewForm builds the form handler.
func NewForm(pipe *predict.Pipeline, bus eventbus.EventBus, log logger.Logger) *Form {
	return &Form{
		pipe: pipe,
		bus:  bus,
		log:  log,
		tmpl: template.Must(template.New("form").Parse(pageTemplate)),
	}
}

// Register mounts the page on mux.
func (f *Form) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", f.handle)
}

// pageData feeds the template. Values echoes the last submission so the
// form keeps its state across a rejected request.
type pageData struct {
	Airlines []string
	Cities   []string
	Classes  []string
	Values   formValues
	Result   *model.PredictionResult
	Error    string
}

type formValues struct {
	Airline     string
	Source      string
	Destination string
	Departure   string
	Arrival     string
	Duration    string
	Stops       string
	Class       string
	Date        string
}

func defaultValues() formValues {
	return formValues{
		Departure: "10:00",
		Arrival:   "12:00",
		Duration:  "2.0",
		Stops:     "0",
		Date:      time.Now().Format(dateLayout),
	}
}

func (f *Form) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	enc := f.pipe.Encoders()
	data := pageData{
		Airlines: enc.Airline.Names,
		Cities:   enc.City.Names,
		Classes:  enc.Class.Names,
		Values:   defaultValues(),
	}

	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		f.predict(r, &data)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := f.tmpl.Execute(w, data); err != nil {
		f.log.Errorf("render form: %v", err)
	}
}

func (f *Form) predict(r *http.Request, data *pageData) {
	if err := r.ParseForm(); err != nil {
		data.Error = "invalid form submission"
		return
	}
	v := formValues{
		Airline:     r.PostFormValue("airline"),
		Source:      r.PostFormValue("source_city"),
		Destination: r.PostFormValue("destination_city"),
		Departure:   r.PostFormValue("departure_time"),
		Arrival:     r.PostFormValue("arrival_time"),
		Duration:    r.PostFormValue("duration_hours"),
		Stops:       r.PostFormValue("stops"),
		Class:       r.PostFormValue("class"),
		Date:        r.PostFormValue("journey_date"),
	}
	data.Values = v

	duration, err := strconv.ParseFloat(v.Duration, 64)
	if err != nil {
		data.Error = "duration must be a number of hours"
		return
	}
	stops, err := strconv.Atoi(v.Stops)
	if err != nil {
		data.Error = "stops must be 0 or 1"
		return
	}
	date, err := time.Parse(dateLayout, v.Date)
	if err != nil {
		data.Error = "journey date must be YYYY-MM-DD"
		return
	}

	q := model.FlightQuery{
		Airline:         v.Airline,
		SourceCity:      v.Source,
		DestinationCity: v.Destination,
		DepartureTime:   v.Departure,
		ArrivalTime:     v.Arrival,
		DurationHours:   duration,
		Stops:           stops,
		Class:           v.Class,
		JourneyDate:     date,
	}

	start := time.Now()
	res, err := f.pipe.Predict(q)
	f.publish(q, res, err, time.Since(start))
	if err != nil {
		data.Error = messageFor(err)
		if data.Error == genericMessage {
			f.log.Errorf("prediction failed: %v", err)
		}
		return
	}
	data.Result = &res
}

func (f *Form) publish(q model.FlightQuery, res model.PredictionResult, err error, latency time.Duration) {
	if f.bus == nil {
		return
	}
	f.bus.Publish(coremetrics.PredictionEvent{
		ID:      res.ID,
		Airline: q.Airline,
		Source:  q.SourceCity,
		Dest:    q.DestinationCity,
		Class:   q.Class,
		FareINR: res.FareINR,
		Outcome: coremetrics.OutcomeFor(err),
		Latency: latency,
		Time:    time.Now().UTC(),
	})
}

const genericMessage = "An error occurred while predicting the fare. Please try again."

// messageFor picks the user-facing text for a pipeline error. Only
// validation variants name their cause.
func messageFor(err error) string {
	switch {
	case errors.Is(err, predict.ErrSameCity):
		return "Source and destination cities cannot be the same."
	case errors.Is(err, predict.ErrBadClock):
		return "Invalid time format. Please use HH:MM (e.g. 14:30)."
	case errors.Is(err, predict.ErrDurationRange):
		return "Duration must be between 0.1 and 24.0 hours."
	case errors.Is(err, predict.ErrStops):
		return "Stops must be 0 or 1."
	default:
		return genericMessage
	}
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Flight Fare Prediction</title>
<style>
  body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; color: #333; }
  h1 { text-align: center; color: #FF9933; }
  .sub { text-align: center; color: #666; }
  form { display: grid; grid-template-columns: 1fr 1fr; gap: 0.75rem 1.5rem; }
  label { display: flex; flex-direction: column; font-size: 0.9rem; }
  button { grid-column: 1 / 3; padding: 0.6rem; font-size: 1rem; }
  .result { background: #e6f4ea; border: 1px solid #b7dfc2; padding: 1rem; margin-top: 1rem; }
  .error { background: #fdecea; border: 1px solid #f5c6cb; padding: 1rem; margin-top: 1rem; }
  footer { text-align: center; color: #888; margin-top: 2rem; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>&#9992;&#65039; Flight Fare Prediction</h1>
<p class="sub">Enter flight details to predict the fare in Indian Rupees</p>
<form method="post" action="/">
  <label>Airline
    <select name="airline">
      {{- range .Airlines}}
      <option value="{{.}}"{{if eq . $.Values.Airline}} selected{{end}}>{{.}}</option>
      {{- end}}
    </select>
  </label>
  <label>Duration (hours)
    <input type="number" name="duration_hours" min="0.1" max="24.0" step="0.1" value="{{.Values.Duration}}">
  </label>
  <label>Source City
    <select name="source_city">
      {{- range .Cities}}
      <option value="{{.}}"{{if eq . $.Values.Source}} selected{{end}}>{{.}}</option>
      {{- end}}
    </select>
  </label>
  <label>Total Stops
    <select name="stops">
      <option value="0"{{if eq .Values.Stops "0"}} selected{{end}}>0</option>
      <option value="1"{{if eq .Values.Stops "1"}} selected{{end}}>1</option>
    </select>
  </label>
  <label>Destination City
    <select name="destination_city">
      {{- range .Cities}}
      <option value="{{.}}"{{if eq . $.Values.Destination}} selected{{end}}>{{.}}</option>
      {{- end}}
    </select>
  </label>
  <label>Class
    <select name="class">
      {{- range .Classes}}
      <option value="{{.}}"{{if eq . $.Values.Class}} selected{{end}}>{{.}}</option>
      {{- end}}
    </select>
  </label>
  <label>Departure Time (HH:MM, 24hr)
    <input type="text" name="departure_time" value="{{.Values.Departure}}">
  </label>
  <label>Date of Journey
    <input type="date" name="journey_date" value="{{.Values.Date}}">
  </label>
  <label>Arrival Time (HH:MM, 24hr)
    <input type="text" name="arrival_time" value="{{.Values.Arrival}}">
  </label>
  <label></label>
  <button type="submit">Predict Fare</button>
</form>
{{- if .Error}}
<div class="error">&#10060; {{.Error}}</div>
{{- end}}
{{- with .Result}}
<div class="result">
  <strong>Predicted Flight Fare: {{.FareDisplay}}</strong>
  <ul>
    <li><strong>Route:</strong> {{.Query.Route}}</li>
    <li><strong>Airline:</strong> {{.Query.Airline}}</li>
    <li><strong>Class:</strong> {{.Query.Class}}</li>
    <li><strong>Duration:</strong> {{.Query.DurationHours}} hours</li>
    <li><strong>Stops:</strong> {{.Query.Stops}}</li>
  </ul>
</div>
{{- end}}
<footer>Powered by a pre-trained regression model</footer>
</body>
</html>
`
