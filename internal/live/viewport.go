package live

import (
	"net/http"
	"strings"
)

var mobileUA = []string{"Mobi", "Android", "iPhone", "iPod", "Opera Mini", "IEMobile"}

// CompactRequest guesses the device class before the client reports its
// width: the Sec-CH-UA-Mobile client hint when present, else the User-Agent.
func CompactRequest(r *http.Request) bool {
	switch r.Header.Get("Sec-CH-UA-Mobile") {
	case "?1":
		return true
	case "?0":
		return false
	}
	ua := r.UserAgent()
	for _, m := range mobileUA {
		if strings.Contains(ua, m) {
			return true
		}
	}
	return false
}
