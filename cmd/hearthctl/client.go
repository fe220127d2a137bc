package main

import (
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
)

// kindPaths maps CLI kind names onto API collections.
var kindPaths = map[string]string{
	"memory":        "/api/memories",
	"event":         "/api/events",
	"family_member": "/api/family-members",
	"story":         "/api/stories",
	"photo":         "/api/photos",
}

func newClient(apiURL string) *resty.Client {
	return resty.New().SetBaseURL(apiURL)
}

func runLogin(apiURL, password string, out io.Writer) error {
	resp, err := newClient(apiURL).R().
		SetBody(map[string]string{"password": password}).
		Post("/api/session/login")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Fprintln(out, "gate open")
	return nil
}

func runList(apiURL, kind string, out io.Writer) error {
	path, ok := kindPaths[kind]
	if !ok {
		if kind == "profile" {
			return fmt.Errorf("profiles are fetched by name: use the API directly")
		}
		return fmt.Errorf("unknown kind %q", kind)
	}
	resp, err := newClient(apiURL).R().Get(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err = out.Write(resp.Body())
	return err
}

func runSearch(apiURL, q, tag string, out io.Writer) error {
	req := newClient(apiURL).R()
	if q != "" {
		req.SetQueryParam("q", q)
	}
	if tag != "" {
		req.SetQueryParam("tag", tag)
	}
	resp, err := req.Get("/api/search")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err = out.Write(resp.Body())
	return err
}

func runDelete(apiURL, kind, id string, out io.Writer) error {
	path, ok := kindPaths[kind]
	if !ok {
		return fmt.Errorf("unknown kind %q", kind)
	}
	resp, err := newClient(apiURL).R().Delete(path + "/" + id)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Fprintln(out, "deleted", id)
	return nil
}

func runExport(apiURL string, out io.Writer) error {
	resp, err := newClient(apiURL).R().Get("/api/export")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	_, err = out.Write(resp.Body())
	return err
}
