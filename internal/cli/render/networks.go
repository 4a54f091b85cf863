package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, json bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:  out,
		json: json,
	}
}

type networkJSON struct {
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	PolkaVM  bool   `json:"polkavm"`
	ChainID  uint64 `json:"chainId,omitempty"`
	Deployer string `json:"deployer,omitempty"`
	Current  bool   `json:"current"`
	Error    string `json:"error,omitempty"`
}

// RenderNetworksList renders the configured networks
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if r.json {
		out := make([]networkJSON, 0, len(result.Networks))
		for _, n := range result.Networks {
			entry := networkJSON{
				Name:     n.Name,
				URL:      n.URL,
				PolkaVM:  n.PolkaVM,
				ChainID:  n.ChainID,
				Deployer: n.Deployer,
				Current:  n.Name == result.Current,
			}
			if n.Error != nil {
				entry.Error = n.Error.Error()
			}
			out = append(out, entry)
		}
		return RenderJSON(r.out, out)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in ignis.toml")
		return nil
	}

	fmt.Fprintln(r.out, headerStyle.Sprint("🌐 Available Networks:"))
	fmt.Fprintln(r.out)

	t := newTable(r.out, table.Row{"", "NAME", "CHAIN ID", "VM", "URL", "DEPLOYER"})
	for _, n := range result.Networks {
		marker := " "
		if n.Name == result.Current {
			marker = overrideStyle.Sprint("●")
		}

		chainID := faintStyle.Sprint("-")
		if n.ChainID != 0 {
			chainID = fmt.Sprint(n.ChainID)
		}
		if n.Error != nil {
			chainID = FormatError(n.Error.Error())
		}

		vm := "evm"
		if n.PolkaVM {
			vm = "polkavm"
		}

		url := n.URL
		if n.URL == "" {
			url = faintStyle.Sprint("in-process")
		}

		deployer := faintStyle.Sprint("-")
		if n.Deployer != "" {
			deployer = addressStyle.Sprint(n.Deployer)
		}

		t.AppendRow(table.Row{marker, nameStyle.Sprint(n.Name), chainID, vm, url, deployer})
	}
	t.Render()

	return nil
}
