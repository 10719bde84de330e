package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jengzang/life-rhythms-go/internal/mapper"
	"github.com/jengzang/life-rhythms-go/internal/models"
)

func TestRenderPage(t *testing.T) {
	p := Page{
		Title: "Life Rhythms in Europe",
		Options: models.FilterOptions{
			Countries:  []string{"Belgium", "France"},
			Years:      []int{2000, 2010},
			Activities: []string{"Sleep"},
			HourMax:    23,
		},
		Dashboard: mapper.Dashboard{
			Selection: models.Selection{Country: "France", Year: 2010, Activity: "Sleep", Hour: 8},
			Views: []mapper.View{
				{ID: mapper.ViewDailyRhythm, Header: "Daily Activity Rhythm", Caption: "<b>caption</b>"},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p))

	html := buf.String()
	require.Contains(t, html, "<title>Life Rhythms in Europe</title>")
	require.Contains(t, html, `<option value="France" selected>France</option>`)
	require.Contains(t, html, `<option value="2010" selected>2010</option>`)
	require.Contains(t, html, `<section id="daily-rhythm">`)
	require.Contains(t, html, "&lt;b&gt;caption&lt;/b&gt;")
	require.Contains(t, html, "About the data")
	require.NotContains(t, html, `class="notice"`)

	buf.Reset()
	p.Notice = "invalid filter value for year: 1999"
	require.NoError(t, Render(&buf, p))
	require.Contains(t, buf.String(), `<p class="notice" role="alert">invalid filter value for year: 1999</p>`)
}
