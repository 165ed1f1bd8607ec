package decoder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-equity-advisor/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxDecodeAttempts = 2
	batchExecuteURL   = "https://news.google.com/_/DotsSplashUi/data/batchexecute"
)

// DecodeResult is the outcome of resolving a Google News RSS link.
type DecodeResult struct {
	Status     bool
	Message    string
	DecodedURL string
}

// GoogleDecoder resolves news.google.com RSS redirect links to the article's
// canonical URL via the internal batchexecute endpoint.
type GoogleDecoder struct {
	client *http.Client
	log    *logger.Logger
}

// NewGoogleDecoder creates a new GoogleDecoder.
func NewGoogleDecoder(log *logger.Logger) *GoogleDecoder {
	return &GoogleDecoder{
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

// DecodeGoogleNewsURL resolves sourceURL. Non-Google links pass through
// unchanged. attempt tracks retries on transient failures.
func (d *GoogleDecoder) DecodeGoogleNewsURL(sourceURL string, attempt int) DecodeResult {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return DecodeResult{Status: false, Message: fmt.Sprintf("invalid url: %v", err)}
	}
	if parsed.Hostname() != "news.google.com" {
		return DecodeResult{Status: true, DecodedURL: sourceURL}
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 {
		return DecodeResult{Status: false, Message: "unrecognized google news path"}
	}
	articleID := parts[len(parts)-1]

	signature, timestamp, err := d.fetchDecodingParams(articleID)
	if err != nil {
		if attempt < maxDecodeAttempts {
			time.Sleep(time.Duration(attempt+1) * time.Second)
			return d.DecodeGoogleNewsURL(sourceURL, attempt+1)
		}
		return DecodeResult{Status: false, Message: fmt.Sprintf("failed to fetch decoding params: %v", err)}
	}

	decoded, err := d.resolveURL(articleID, signature, timestamp)
	if err != nil {
		if attempt < maxDecodeAttempts {
			time.Sleep(time.Duration(attempt+1) * time.Second)
			return d.DecodeGoogleNewsURL(sourceURL, attempt+1)
		}
		return DecodeResult{Status: false, Message: fmt.Sprintf("failed to resolve url: %v", err)}
	}

	return DecodeResult{Status: true, DecodedURL: decoded}
}

func (d *GoogleDecoder) fetchDecodingParams(articleID string) (string, string, error) {
	articleURL := fmt.Sprintf("https://news.google.com/articles/%s", articleID)
	req, err := http.NewRequest("GET", articleURL, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("article page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", err
	}

	div := doc.Find("c-wiz > div").First()
	signature, ok := div.Attr("data-n-a-sg")
	if !ok {
		return "", "", fmt.Errorf("signature attribute not found")
	}
	timestamp, ok := div.Attr("data-n-a-ts")
	if !ok {
		return "", "", fmt.Errorf("timestamp attribute not found")
	}
	return signature, timestamp, nil
}

func (d *GoogleDecoder) resolveURL(articleID, signature, timestamp string) (string, error) {
	innerPayload := fmt.Sprintf(
		`["garturlreq",[["X","X",["X","X"],null,null,1,1,"US:en",null,1,null,null,null,null,null,0,1],"X","X",1,[1,1,1],1,1,null,0,0,null,0],"%s",%s,"%s"]`,
		articleID, timestamp, signature,
	)
	fReq := [][]interface{}{{"Fbv4je", innerPayload}}
	fReqJSON, err := json.Marshal([]interface{}{fReq})
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("f.req", string(fReqJSON))

	req, err := http.NewRequest("POST", batchExecuteURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("batchexecute returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// The response is a chunked envelope; the payload we need is the second
	// line, itself a JSON array whose inner element is another JSON string.
	lines := strings.Split(string(body), "\n")
	if len(lines) < 3 {
		return "", fmt.Errorf("unexpected batchexecute response shape")
	}

	var envelope [][]interface{}
	if err := json.Unmarshal([]byte(lines[2]), &envelope); err != nil {
		return "", fmt.Errorf("failed to parse batchexecute envelope: %w", err)
	}
	if len(envelope) == 0 || len(envelope[0]) < 3 {
		return "", fmt.Errorf("batchexecute envelope missing payload")
	}

	inner, ok := envelope[0][2].(string)
	if !ok {
		return "", fmt.Errorf("batchexecute payload is not a string")
	}

	var payload []interface{}
	if err := json.Unmarshal([]byte(inner), &payload); err != nil {
		return "", fmt.Errorf("failed to parse inner payload: %w", err)
	}
	if len(payload) < 2 {
		return "", fmt.Errorf("inner payload missing url")
	}

	decoded, ok := payload[1].(string)
	if !ok {
		return "", fmt.Errorf("decoded url is not a string")
	}
	return decoded, nil
}
