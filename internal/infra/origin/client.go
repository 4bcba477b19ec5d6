package origin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"gongsil-api/internal/domain/reservation"
	"gongsil-api/internal/domain/slot"
	"gongsil-api/internal/domain/space"
	"gongsil-api/internal/infra"
	"gongsil-api/internal/pkg/config"
	"gongsil-api/internal/usecase/commands"
	"gongsil-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

// Client talks to the backend origin that owns spaces and reservations.
type Client struct {
	base   *url.URL
	cfg    config.OriginConfig
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg config.Config, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.Origin.URL, "/"))
	if err != nil {
		return nil, infra.WrapUpstreamErr(logger, infra.KindUnavailable, 0, "invalid origin url", err)
	}
	return &Client{base: base, cfg: cfg.Origin, http: httpClient, logger: logger}, nil
}

var (
	_ commands.SpaceGateway       = (*Client)(nil)
	_ commands.ReservationGateway = (*Client)(nil)
	_ queries.TimeTableSource     = (*Client)(nil)
)

// RegisterSpace posts JSON, or multipart with a "data" part when photos are attached.
func (c *Client) RegisterSpace(ctx context.Context, sp *space.Space) (uuid.UUID, error) {
	payload := newSpacePayload(sp)

	var (
		body        io.Reader
		contentType string
		err         error
	)
	if len(sp.Photos()) == 0 {
		body, contentType, err = jsonBody(payload)
	} else {
		body, contentType, err = multipartBody(payload, sp.Photos())
	}
	if err != nil {
		return uuid.Nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, 0, "encode space payload", err)
	}

	var created spaceCreated
	if err := c.do(ctx, http.MethodPost, "/api/spaces", nil, body, contentType, &created); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(created.ID)
	if err != nil {
		return uuid.Nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, 0, "origin returned an invalid space id", err)
	}
	return id, nil
}

func (c *Client) FetchTimeTable(ctx context.Context, spaceID uuid.UUID, from, to slot.DateKey) (*queries.SpaceSnapshot, error) {
	q := url.Values{}
	if from != "" {
		q.Set("from", from.String())
	}
	if to != "" {
		q.Set("to", to.String())
	}

	var body timeTableBody
	if err := c.do(ctx, http.MethodGet, "/api/spaces/"+spaceID.String()+"/timetable", q, nil, "", &body); err != nil {
		return nil, err
	}

	return &queries.SpaceSnapshot{
		ID:           spaceID,
		Name:         body.Name,
		MaxPeople:    body.MaxPeople,
		PricePerHour: body.Price,
		TimeTable:    fromWire(body.EnrollmentTimeTable),
	}, nil
}

func (c *Client) SubmitReservation(ctx context.Context, r *reservation.Reservation) (*commands.ReservationReceipt, error) {
	body, contentType, err := jsonBody(newReservationPayload(r))
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, 0, "encode reservation payload", err)
	}

	var created reservationCreated
	path := "/api/spaces/" + r.SpaceID().String() + "/reservations"
	if err := c.do(ctx, http.MethodPost, path, nil, body, contentType, &created); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(created.ID)
	if err != nil {
		return nil, infra.WrapUpstreamErr(c.logger, infra.KindDecode, 0, "origin returned an invalid reservation id", err)
	}
	return &commands.ReservationReceipt{ID: id, Status: reservation.ParseStatus(created.Status)}, nil
}

// Ping succeeds when the origin health endpoint answers 2xx.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.cfg.HealthPath, nil, nil, "", nil)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string, out any) error {
	u := c.base.JoinPath(path)
	u.RawQuery = q.Encode()

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, "build origin request", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, 0, method+" "+path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, res.StatusCode, "read origin response", err)
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return infra.WrapUpstreamErr(c.logger, infra.KindNotFound, res.StatusCode, method+" "+path, nil)
	case res.StatusCode >= http.StatusInternalServerError:
		return infra.WrapUpstreamErr(c.logger, infra.KindUnavailable, res.StatusCode, method+" "+path, nil)
	case res.StatusCode >= http.StatusBadRequest:
		return infra.WrapUpstreamErr(c.logger, infra.KindRejected, res.StatusCode, method+" "+path+": "+string(raw), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return infra.WrapUpstreamErr(c.logger, infra.KindDecode, res.StatusCode, "decode origin response", err)
	}
	return nil
}

func jsonBody(v any) (io.Reader, string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(b), "application/json", nil
}

func multipartBody(payload spacePayload, photos []space.Photo) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField("data", string(data)); err != nil {
		return nil, "", err
	}

	for _, p := range photos {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="photoList"; filename="`+escapeQuotes(p.Filename)+`"`)
		ct := p.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(p.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
