package helpers

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/gamedb/gamescout/pkg/log"
)

func GetWithTimeout(link string, timeout time.Duration) (b []byte, code int, err error) {
	return requestWithTimeout("GET", link, timeout, nil, nil)
}

func Post(link string, data url.Values, headers http.Header) (b []byte, code int, err error) {
	return requestWithTimeout("POST", link, 0, headers, data)
}

func requestWithTimeout(method string, link string, timeout time.Duration, headers http.Header, data url.Values) (body []byte, code int, err error) {

	if link == "" {
		return nil, 0, err
	}

	u, err := url.Parse(link)
	if err != nil {
		return nil, 0, err
	}

	if !u.IsAbs() {
		return nil, 0, err
	}

	if timeout == 0 {
		timeout = time.Second * 10
	}

	var x io.Reader
	if len(data) > 0 {
		x = bytes.NewBufferString(data.Encode())
	}

	req, err := http.NewRequest(method, u.String(), x)
	if err != nil {
		return nil, 0, err
	}

	if len(headers) > 0 {
		req.Header = headers
	}

	clientWithTimeout := &http.Client{
		Timeout: timeout,
	}

	resp, err := clientWithTimeout.Do(req)
	if err != nil {
		return nil, 0, err
	}

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			log.ErrS(err)
		}
	}()

	body, err = ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	return body, resp.StatusCode, err
}
