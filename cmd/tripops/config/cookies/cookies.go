// Package cookies keeps session cookies of the backend between command invocations.
package cookies

import (
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/hitrip/tripops/cmd/tripops/config/open"
	"golang.org/x/net/publicsuffix"
	"gopkg.in/yaml.v3"
)

// Jar is a http.CookieJar which can be saved to and loaded from a file.
type Jar struct {
	mu   sync.Mutex
	jar  *cookiejar.Jar
	urls map[string]*url.URL
}

var _ http.CookieJar = &Jar{}

type entry struct {
	URL     string   `yaml:"url"`
	Cookies []cookie `yaml:"cookies"`
}

type cookie struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func New() *Jar {
	// cookiejar.New returns error only when options are broken.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return &Jar{jar: jar, urls: map[string]*url.URL{}}
}

func origin(u *url.URL) *url.URL {
	return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}
}

func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	o := origin(u)
	j.urls[o.String()] = o
	j.jar.SetCookies(u, cookies)
}

func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jar.Cookies(u)
}

// Get returns the value of the cookie named name which is sent to u.
func (j *Jar) Get(u *url.URL, name string) (string, bool) {
	for _, c := range j.Cookies(u) {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Clear forgets all cookies.
func (j *Jar) Clear() {
	fresh := New()
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jar = fresh.jar
	j.urls = fresh.urls
}

// Load reads cookies saved by Save.
//
// When the file does not exist, it returns an empty Jar.
func Load(path string) (*Jar, error) {
	j := New()

	buf, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return j, nil
	} else if err != nil {
		return nil, err
	}

	entries := []entry{}
	if err := yaml.Unmarshal(buf, &entries); err != nil {
		return nil, err
	}
	for _, e := range entries {
		u, err := url.Parse(e.URL)
		if err != nil {
			return nil, err
		}
		cs := make([]*http.Cookie, 0, len(e.Cookies))
		for _, c := range e.Cookies {
			cs = append(cs, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
		}
		j.SetCookies(u, cs)
	}
	return j, nil
}

// Save writes cookies into the file only the current user can read.
func (j *Jar) Save(path string) error {
	j.mu.Lock()
	keys := make([]string, 0, len(j.urls))
	for k := range j.urls {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := []entry{}
	for _, k := range keys {
		cs := j.jar.Cookies(j.urls[k])
		if len(cs) == 0 {
			continue
		}
		e := entry{URL: k}
		for _, c := range cs {
			e.Cookies = append(e.Cookies, cookie{Name: c.Name, Value: c.Value})
		}
		entries = append(entries, e)
	}
	j.mu.Unlock()

	buf, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}
	f, err := open.NewSafeFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(buf)
	return err
}
