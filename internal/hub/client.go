package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sremy91/intuis-schedule-card/internal/models"
)

// Client talks to a real gateway over its JSON HTTP API.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Timetable(ctx context.Context) (models.WeeklyTimetable, error) {
	var tt models.WeeklyTimetable
	if err := c.do(ctx, http.MethodGet, "/api/v1/timetable", nil, &tt); err != nil {
		return nil, err
	}
	return tt, nil
}

func (c *Client) Zones(ctx context.Context) ([]models.Zone, error) {
	var zones []models.Zone
	if err := c.do(ctx, http.MethodGet, "/api/v1/zones", nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *Client) Schedules(ctx context.Context) (models.ScheduleInfo, error) {
	var info models.ScheduleInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/schedules", nil, &info); err != nil {
		return models.ScheduleInfo{}, err
	}
	return info, nil
}

func (c *Client) SelectSchedule(ctx context.Context, name string) error {
	body := map[string]string{"name": name}
	return c.do(ctx, http.MethodPost, "/api/v1/schedules/select", body, nil)
}

func (c *Client) SetScheduleSlot(ctx context.Context, day int, startTime string, zoneID int) error {
	body := map[string]any{
		"day":        day,
		"start_time": startTime,
		"zone_id":    zoneID,
	}
	return c.do(ctx, http.MethodPost, "/api/v1/schedule/slot", body, nil)
}

func (c *Client) SetScheduleSpan(ctx context.Context, startDay, endDay int, startTime, endTime, zoneName string) error {
	// The gateway wire format carries day indices as string-encoded
	// integers on the span call.
	body := map[string]string{
		"start_day":  strconv.Itoa(startDay),
		"end_day":    strconv.Itoa(endDay),
		"start_time": startTime,
		"end_time":   endTime,
		"zone_name":  zoneName,
	}
	return c.do(ctx, http.MethodPost, "/api/v1/schedule/span", body, nil)
}

func (c *Client) RefreshSchedules(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/schedules/refresh", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request %s %s failed: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("gateway returned %d for %s %s: %s", res.StatusCode, method, path, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}
	return nil
}
