package plotcfg

// Option denylists, one per recognized section. These options are
// either set by the renderer itself (data, coordinates, output names)
// or have no meaning outside the original rendering backend, so user
// configurations must not forward them.
var (
	outputDenylist = []string{
		"fname", "format", "bbox_extra_artists", "pil_kwargs",
	}

	titleDenylist = []string{
		"clip_box", "clip_path", "figure",
		"path_effects", "text", "transform",
	}

	axisLabelDenylist = []string{
		"clip_box", "clip_path", "figure", "label",
		"path_effects", "text", "transform",
	}

	axisTickLabelsDenylist = []string{
		"labels", "clip_box", "clip_path", "figure", "label",
		"path_effects", "text", "transform",
	}

	lineplotDenylist = []string{
		"x", "y", "data", "agg_filter", "clip_box", "clip_path",
		"figure", "label", "path_effects", "picker", "transform",
		"xdata", "ydata",
	}
)

// FilterOutput strips the output section of options the renderer
// controls itself.
func FilterOutput(section Tree) Tree {
	return FilterSection(section, outputDenylist)
}

// filterAxis filters an xaxis/yaxis section. The section itself keeps
// all its keys; its nested "label" and "ticklabels" blocks each get
// their own denylist.
func filterAxis(section Tree) Tree {
	filtered := deepCopy(section)
	if label, ok := section["label"].(Tree); ok {
		filtered["label"] = FilterSection(label, axisLabelDenylist)
	}
	if ticklabels, ok := section["ticklabels"].(Tree); ok {
		filtered["ticklabels"] = FilterSection(ticklabels, axisTickLabelsDenylist)
	}
	return filtered
}

// NormalizeLineplots prepares the per-plot configuration tree for the
// rendering step. raw maps subplot names to their settings; the
// "general" entry, if present, is not a plot but a defaults block that
// is merged underneath every other entry (per-plot values win). The
// lineplot, title, xaxis and yaxis sub-sections of each plot are then
// filtered with their fixed denylists; absent sub-sections are skipped.
func NormalizeLineplots(raw Tree) Tree {
	var general Tree
	if g, ok := raw["general"].(Tree); ok {
		general = g
	}

	normalized := make(Tree, len(raw))
	for name, value := range raw {
		if name == "general" {
			continue
		}
		plot, ok := value.(Tree)
		if !ok {
			normalized[name] = deepCopyValue(value)
			continue
		}

		if general != nil {
			plot = Merge(plot, general)
		} else {
			plot = deepCopy(plot)
		}

		if section, ok := plot["lineplot"].(Tree); ok {
			plot["lineplot"] = FilterSection(section, lineplotDenylist)
		}
		if section, ok := plot["title"].(Tree); ok {
			plot["title"] = FilterSection(section, titleDenylist)
		}
		if section, ok := plot["xaxis"].(Tree); ok {
			plot["xaxis"] = filterAxis(section)
		}
		if section, ok := plot["yaxis"].(Tree); ok {
			plot["yaxis"] = filterAxis(section)
		}

		normalized[name] = plot
	}
	return normalized
}
