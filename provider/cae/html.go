package cae

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/robotomize/dhconv/internal/strutil"
	"github.com/robotomize/dhconv/label"
	"golang.org/x/net/html"
)

const pageDateLayout = "02-01-2006"

var (
	errParseAttrNotValid = errors.New("attr is not valid")
	errHTMLNotValid      = errors.New("html not valid")
)

func parseHTML(b []byte) (aedLatestRates, error) {
	var dailyRates aedLatestRates
	root, err := html.Parse(bytes.NewReader(b))
	if err != nil {
		return dailyRates, fmt.Errorf("%w: html parse: %v", errHTMLNotValid, err)
	}

	doc := goquery.NewDocumentFromNode(root)

	// the badge reads "Date12-08-2021"
	date := strings.TrimSpace(doc.Find("#ratesDatePicker > h3 > span > span").Text())
	if len(date) < 4 {
		return dailyRates, errParseAttrNotValid
	}

	dt, err := time.Parse(pageDateLayout, date[4:])
	if err != nil {
		return dailyRates, errParseAttrNotValid
	}

	dailyRates.time = dt

	var buf bytes.Buffer

	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}

	rateNodes := doc.Find("#ratesDateTable tbody tr td").Nodes
	if len(rateNodes)%2 != 0 {
		return dailyRates, errHTMLNotValid
	}

	for i := 0; i < len(rateNodes); i += 2 {
		f(rateNodes[i])

		name := strutil.RemoveExtraSpaces(buf.String())
		buf.Reset()
		if name == "" {
			return dailyRates, errParseAttrNotValid
		}

		symbol, ok := label.Names[name]
		if !ok {
			continue
		}

		f(rateNodes[i+1])

		rateStr := strings.TrimSpace(buf.String())
		buf.Reset()

		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil || rate <= 0 {
			return aedLatestRates{}, errParseAttrNotValid
		}

		dailyRates.rates = append(dailyRates.rates, aedExchangeRate{
			symbol: symbol,
			rate:   rate,
		})
	}

	return dailyRates, nil
}
