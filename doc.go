// Package prettyplot styles gonum plots: publication ready figures with
// good looking defaults, a small set of cosmetic styles and size modes for
// print, slides and posters.
//
//
// Styles and Modes
//
// All settings live in a StyleContext. Use applies a Config on top of the
// defaults, Update changes single entries:
//     ctx := prettyplot.NewStyleContext()
//     err := ctx.Use(prettyplot.Config{
//         Style: prettyplot.Ptr(prettyplot.StyleMinimal),
//         Mode:  prettyplot.Ptr(prettyplot.ModePrint),
//     })
// Three styles are available: StyleDefault adds a grid and keeps all
// four spines, StyleMinimal removes every line not needed to read the
// data and StyleNone leaves the library defaults alone. The modes scale
// line widths, tick sizes and fonts. Configs can be read from TOML
// files with LoadConfig.
//
//
// Figures
//
// A Figure is a grid of Axes drawn with the theme of the context it was
// created from:
//     fig, err := prettyplot.NewFigure(ctx, 1, 2)
//     ax := fig.Axes(0, 0)
//     ax.Plot(xs, ys, prettyplot.LineOptions{Label: "data"})
//     ax.Legend(prettyplot.LegendOptions{Outside: "top"})
//     err = fig.Save("figure")  // figure.pdf
// Legends and colorbars may be placed on any side of an axes; the axis on
// that side moves to the opposite one.
//
// Figure.Size is the size of the data area of the first axes. When saving,
// the canvas is enlarged until that area ends up with the requested size.
//
//
// Colors
//
// Named colors like "pplt:blue" or "pplt:axes" are resolved by
// StyleContext.Color. The colormaps of the cmaps package are registered
// on the first call to Use.
package prettyplot
