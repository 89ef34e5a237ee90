package utils

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/oschwald/geoip2-golang"
	"github.com/sirupsen/logrus"

	"github.com/vit0-9/dns_lookup_api/pkg/resolver"
)

var ipLog = logrus.WithField("component", "ipinfo")

// IPInfoData holds validation, classification, reverse DNS and GeoIP details
// for one IP address.
type IPInfoData struct {
	IPAddress          string
	IsValid            bool
	Version            string
	IsLoopback         bool
	IsPrivate          bool
	IsMulticast        bool
	IsLinkLocalUnicast bool
	IsGlobalUnicast    bool
	ReverseDNSNames    []string
	Error              string

	CountryCode    string
	CountryName    string
	CityName       string
	PostalCode     string
	Latitude       float64
	Longitude      float64
	TimeZone       string
	ASN            uint
	ASOrganization string
	GeoError       string
}

var (
	cityDB       *geoip2.Reader
	asnDB        *geoip2.Reader
	cityLoadOnce sync.Once
	asnLoadOnce  sync.Once
	cityLoadErr  error
	asnLoadErr   error
)

// LoadMaxMindDBs initializes the GeoIP2 readers. Either path may be empty;
// the matching lookups are then skipped and the response carries a note in
// its geo error field.
func LoadMaxMindDBs(cityDBPath, asnDBPath string) {
	if cityDBPath != "" {
		cityLoadOnce.Do(func() {
			db, err := geoip2.Open(cityDBPath)
			if err != nil {
				ipLog.WithError(err).WithField("path", cityDBPath).Error("Could not open GeoLite2-City database, city lookups disabled")
				cityLoadErr = err
				return
			}
			cityDB = db
			ipLog.WithField("path", cityDBPath).Info("Loaded GeoLite2-City database")
		})
	} else {
		ipLog.Warn("City MMDB path not provided, city lookups disabled")
		cityLoadErr = fmt.Errorf("city MMDB path not provided")
	}

	if asnDBPath != "" {
		asnLoadOnce.Do(func() {
			db, err := geoip2.Open(asnDBPath)
			if err != nil {
				ipLog.WithError(err).WithField("path", asnDBPath).Error("Could not open GeoLite2-ASN database, ASN lookups disabled")
				asnLoadErr = err
				return
			}
			asnDB = db
			ipLog.WithField("path", asnDBPath).Info("Loaded GeoLite2-ASN database")
		})
	} else {
		ipLog.Warn("ASN MMDB path not provided, ASN lookups disabled")
		asnLoadErr = fmt.Errorf("ASN MMDB path not provided")
	}
}

// CloseMaxMindDBs closes all GeoIP2 readers.
func CloseMaxMindDBs() {
	if cityDB != nil {
		if err := cityDB.Close(); err != nil {
			ipLog.WithError(err).Error("Error closing GeoLite2-City database")
		}
	}
	if asnDB != nil {
		if err := asnDB.Close(); err != nil {
			ipLog.WithError(err).Error("Error closing GeoLite2-ASN database")
		}
	}
}

// reverseLookup resolves the PTR names of an IP. Swappable in tests.
var reverseLookup = systemReverseNames

// systemReverseNames asks the system resolver for the PTR records of ip.
// Failures are treated as "no names": reverse DNS is best effort here.
func systemReverseNames(ctx context.Context, ip string) []string {
	answer, err := resolver.SystemAdapter{}.Resolve(ctx, ip, "PTR", false)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(answer.Records))
	for _, rec := range answer.Records {
		if name, ok := rec.(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// GetBasicIPInfo retrieves validation, classification, reverse DNS and GeoIP
// information about an IP address.
func GetBasicIPInfo(ctx context.Context, ipStr string) IPInfoData {
	data := IPInfoData{IPAddress: ipStr}

	parsedIP := net.ParseIP(ipStr)
	if parsedIP == nil {
		data.Error = "Invalid IP address format"
		return data
	}

	data.IsValid = true
	if parsedIP.To4() != nil {
		data.Version = "IPv4"
	} else {
		data.Version = "IPv6"
	}

	data.IsLoopback = parsedIP.IsLoopback()
	data.IsPrivate = parsedIP.IsPrivate()
	data.IsMulticast = parsedIP.IsMulticast()
	data.IsLinkLocalUnicast = parsedIP.IsLinkLocalUnicast()
	data.IsGlobalUnicast = parsedIP.IsGlobalUnicast()

	if names := reverseLookup(ctx, ipStr); len(names) > 0 {
		data.ReverseDNSNames = names
	}

	var geoErrs []string

	if cityDB != nil {
		cityRecord, err := cityDB.City(parsedIP)
		if err == nil && cityRecord != nil {
			data.CountryCode = cityRecord.Country.IsoCode
			data.CountryName = cityRecord.Country.Names["en"]
			data.CityName = cityRecord.City.Names["en"]
			data.PostalCode = cityRecord.Postal.Code
			data.Latitude = cityRecord.Location.Latitude
			data.Longitude = cityRecord.Location.Longitude
			data.TimeZone = cityRecord.Location.TimeZone
		} else if err != nil {
			geoErrs = append(geoErrs, fmt.Sprintf("City/Country lookup error: %v", err))
		}
	} else if cityLoadErr != nil {
		geoErrs = append(geoErrs, fmt.Sprintf("City/Country DB not loaded: %v", cityLoadErr))
	}

	if asnDB != nil {
		asnRecord, err := asnDB.ASN(parsedIP)
		if err == nil && asnRecord != nil {
			data.ASN = asnRecord.AutonomousSystemNumber
			data.ASOrganization = asnRecord.AutonomousSystemOrganization
		} else if err != nil {
			geoErrs = append(geoErrs, fmt.Sprintf("ASN lookup error: %v", err))
		}
	} else if asnLoadErr != nil {
		geoErrs = append(geoErrs, fmt.Sprintf("ASN DB not loaded: %v", asnLoadErr))
	}

	if len(geoErrs) > 0 {
		data.GeoError = strings.Join(geoErrs, "; ")
	}

	return data
}
