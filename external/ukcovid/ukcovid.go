package ukcovid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/bitmark-inc/ukcovid-dashboard/consts"
	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

const (
	logPrefix = "ukcovid"

	// DefaultURL is the public endpoint of the UK coronavirus dashboard API
	DefaultURL = "https://api.coronavirus.data.gov.uk/v1/data"
)

var (
	ErrResponseStatus = fmt.Errorf("unexpected response status")
)

// Fetcher - interface to fetch UK covid statistics
type Fetcher interface {
	DailyRecords(ctx context.Context, area string) ([]schema.DailyRecord, error)
	AgeGenderSnapshots(ctx context.Context) ([]schema.AgeGenderSnapshot, error)
}

// FetchError is returned when the statistics endpoint cannot be reached or
// answers with something other than a decodable data set.
type FetchError struct {
	Area   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("fetch %s: %s", e.Area, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d: %s", e.Area, e.Status, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Unreachable reports whether the request failed before any response was received
func (e *FetchError) Unreachable() bool {
	return e.Status == 0
}

// IsUnreachable reports whether err is a FetchError without a response
func IsUnreachable(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Unreachable()
}

type response struct {
	Data json.RawMessage `json:"data"`
}

// Client is a Fetcher backed by the statistics REST endpoint
type Client struct {
	url        string
	httpClient *http.Client
	scope      tally.Scope
}

// Filters translates an area selector into the feed's filter expression
func Filters(area string) string {
	if area == consts.Overview {
		return "areaType=" + consts.AreaTypeOverview
	}

	filters := []string{
		"areaType=" + consts.AreaTypeNation,
		"areaName=" + area,
	}
	return strings.Join(filters, ";")
}

// Structure serializes a field projection into compact JSON
func Structure(fields map[string]string) (string, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Fetch issues one GET for the area with the given field projection and
// decodes the returned rows into out, which must be a pointer to a slice.
// An empty data set leaves out untouched.
func (c *Client) Fetch(ctx context.Context, area string, structure map[string]string, out interface{}) error {
	scope := c.scope.Tagged(map[string]string{"area": area})
	scope.Counter("requests").Inc(1)
	sw := scope.Timer("latency").Start()
	defer sw.Stop()

	if err := c.fetch(ctx, area, structure, out); err != nil {
		scope.Counter("errors").Inc(1)
		// responses the dashboard degrades on stay silent
		if IsUnreachable(err) {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"area":   area,
				"error":  err,
			}).Warn("fetch statistics")
		}
		return err
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, area string, structure map[string]string, out interface{}) error {
	s, err := Structure(structure)
	if err != nil {
		return &FetchError{Area: area, Err: err}
	}

	params := url.Values{}
	params.Set("filters", Filters(area))
	params.Set("structure", s)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+params.Encode(), nil)
	if err != nil {
		return &FetchError{Area: area, Err: err}
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"area":   area,
		"url":    req.URL.String(),
	}).Debug("get statistics")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Area: area, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{Area: area, Status: resp.StatusCode, Err: ErrResponseStatus}
	}

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Area: area, Status: resp.StatusCode, Err: err}
	}

	var r response
	if err := json.Unmarshal(data, &r); err != nil {
		return &FetchError{Area: area, Status: resp.StatusCode, Err: err}
	}

	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(r.Data, out); err != nil {
		return &FetchError{Area: area, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// DailyRecords fetches the daily case and death figures of an area, newest first
func (c *Client) DailyRecords(ctx context.Context, area string) ([]schema.DailyRecord, error) {
	records := []schema.DailyRecord{}
	if err := c.Fetch(ctx, area, schema.DailyRecordStructure(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AgeGenderSnapshots fetches England's cumulative cases by age and gender, newest first
func (c *Client) AgeGenderSnapshots(ctx context.Context) ([]schema.AgeGenderSnapshot, error) {
	snapshots := []schema.AgeGenderSnapshot{}
	if err := c.Fetch(ctx, consts.England, schema.AgeGenderStructure(), &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// New - new statistics client. An empty url selects the public endpoint, a
// nil httpClient uses a client with the given timeout and a nil scope disables metrics.
func New(url string, timeout time.Duration, httpClient *http.Client, scope tally.Scope) *Client {
	u := DefaultURL
	if url != "" {
		u = url
	}

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	if scope == nil {
		scope = tally.NoopScope
	}

	return &Client{
		url:        u,
		httpClient: httpClient,
		scope:      scope.SubScope("fetch"),
	}
}
