package site

import "github.com/echolabx/docsite/internal/nav"

const (
	echoProxyRepo      = "https://github.com/echolabx/echoproxy"
	echoProxyAnalytics = "G-ZJY6EE5V5M"
)

// EchoProxy returns the current EchoProxy documentation site definition.
// Each call builds a fresh value.
func EchoProxy() *Config {
	return &Config{
		Options: Options{
			Title: "EchoProxy",
			Logo:  &Logo{Src: "./src/assets/favicon.svg"},
			Head: []HeadEntry{
				{
					Tag: "meta",
					Attrs: Attrs{
						"name":    "google-site-verification",
						"content": "CLxUJgf6sEvwPIugPLy_0lfBi6kUPB1DFyCS_TRCfkw",
					},
				},
				// google analytics
				{
					Tag: "script",
					Attrs: Attrs{
						"async": true,
						"src":   "https://www.googletagmanager.com/gtag/js?id=" + echoProxyAnalytics,
					},
				},
				{
					Tag: "script",
					Content: "window.dataLayer = window.dataLayer || [];\n" +
						"function gtag(){dataLayer.push(arguments);}\n" +
						"gtag('js', new Date());\n" +
						"gtag('config', '" + echoProxyAnalytics + "');",
				},
			},
			Social: map[string]string{
				"github": echoProxyRepo,
			},
			Sidebar: nav.Entries{
				nav.NewGroup("Start Here",
					nav.NewItem("Getting Started", "/start"),
				),
				nav.NewGroup("Debug on Devices",
					nav.NewItem("MacOS", "/device/macos"),
					nav.NewItem("Windows", "/device/windows"),
					nav.NewItem("iOS", "/device/ios"),
					nav.NewItem("Android", "/device/android"),
				),
				nav.NewGroup("Map Mock",
					nav.NewItem("Map Mock", "/mapmock"),
					nav.NewItem("EchoScript", "/mapmock/echoscript"),
					nav.NewItem("Examples", "/mapmock/examples"),
				),
				nav.NewGroup("EchoSend",
					nav.NewItem("EchoSend", "/echosend"),
				),
				nav.NewGroup("Deep in EchoScript",
					nav.NewItem("Language", "/echoscript"),
				),
			},
			CustomCSS: []string{"./src/styles/tailwind.css", "./src/styles/custom.css"},
			Components: map[string]string{
				"SiteTitle": "./src/components/MySiteTitle.astro",
			},
		},
		Astro: &Astro{
			Tailwind: &Tailwind{ApplyBaseStyles: false},
			Icons:    &Icons{Compiler: "astro"},
		},
	}
}
