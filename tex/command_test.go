package tex_test

import (
	"testing"

	"github.com/gotexdev/gotex/tex"
)

func TestCommand_Render(t *testing.T) {
	cases := []struct {
		name string
		cmd  *tex.Command
		want string
	}{
		{"NoArgs", tex.NewCommand("centering"), `\centering`},
		{"SingleArg", tex.NewCommand("caption", "My caption"), `\caption{My caption}`},
		{"MultiArg", tex.NewCommand("definecolor", "spam", "rgb", "1,0,0"),
			`\definecolor{spam}{rgb}{1,0,0}`},
		{"WithOptions", tex.NewCommand("usepackage", "geometry").WithOptions("margin=2.5cm"),
			`\usepackage[margin=2.5cm]{geometry}`},
		{"MultiOptions", tex.NewCommand("documentclass", "article").WithOptions("12pt", "a4paper"),
			`\documentclass[12pt,a4paper]{article}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cmd.Render(); got != tc.want {
				t.Errorf("Render() = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestCommand_Packages(t *testing.T) {
	cmd := tex.NewCommand("textcolor", "red", "word").AddPackage("xcolor", "dvipsnames")
	pkgs := cmd.Packages()
	if pkgs["xcolor"] != "dvipsnames" {
		t.Errorf("Packages()[xcolor] = %q; want %q", pkgs["xcolor"], "dvipsnames")
	}
}
