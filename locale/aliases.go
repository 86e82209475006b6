package locale

// alias maps a canonical JSON key to a legacy key kept for consumers that
// predate the key-schema reorganization.
type alias struct {
	canonical string
	legacy    string
}

// aliasTable is applied in order; when two canonical keys map to the same
// legacy target, the first one present wins because the target is already
// set by the time the second is considered.
var aliasTable = []alias{
	// Welcome
	{"app.welcome.title", "welcome.title"},
	{"app.welcome.subtitle", "welcome.subtitle"},
	{"app.welcome.openFile", "welcome.openFile"},
	{"app.welcome.newFromTemplate", "welcome.newFromTemplate"},
	{"app.welcome.dropFile", "welcome.dropFile"},
	// Settings
	{"app.settings.language", "settings.language"},
	{"app.settings.language_system", "settings.language.system"},
	{"app.settings.appearance", "settings.appearance"},
	{"app.settings.darkTheme", "settings.darkTheme"},
	{"app.settings.defaultDiagram", "settings.defaultDiagram"},
	{"app.settings.mountingHeight", "settings.mountingHeight"},
	{"app.settings.mountingHeight_description", "settings.mountingHeight.description"},
	{"app.settings.export", "settings.export"},
	{"app.settings.about", "settings.about"},
	// Toolbar
	{"app.toolbar.open", "toolbar.open"},
	{"app.toolbar.export", "toolbar.export"},
	{"app.toolbar.exportSVG", "toolbar.exportSVG"},
	{"app.toolbar.exportIES", "toolbar.exportIES"},
	{"app.toolbar.exportLDT", "toolbar.exportLDT"},
	{"app.toolbar.dark", "toolbar.dark"},
	// Nav
	{"app.nav.title", "nav.title"},
	// Error
	{"app.error.ok", "error.ok"},
	// Fullscreen
	{"app.fullscreen.darkTheme", "fullscreen.darkTheme"},
	{"app.fullscreen.done", "fullscreen.done"},
	// Templates
	{"app.template.downlight", "template.downlight"},
	{"app.template.downlight_desc", "template.downlight.desc"},
	{"app.template.projector", "template.projector"},
	{"app.template.projector_desc", "template.projector.desc"},
	{"app.template.linear", "template.linear"},
	{"app.template.linear_desc", "template.linear.desc"},
	{"app.template.fluorescent", "template.fluorescent"},
	{"app.template.fluorescent_desc", "template.fluorescent.desc"},
	{"app.template.roadLuminaire", "template.roadLuminaire"},
	{"app.template.roadLuminaire_desc", "template.roadLuminaire.desc"},
	{"app.template.floorUplight", "template.floorUplight"},
	{"app.template.floorUplight_desc", "template.floorUplight.desc"},
	{"app.template.wikiBatwing", "template.wikiBatwing"},
	{"app.template.wikiBatwing_desc", "template.wikiBatwing.desc"},
	{"app.template.wikiSpotlight", "template.wikiSpotlight"},
	{"app.template.wikiSpotlight_desc", "template.wikiSpotlight.desc"},
	{"app.template.wikiFlood", "template.wikiFlood"},
	{"app.template.wikiFlood_desc", "template.wikiFlood.desc"},
	{"app.template.atlaGrowLight", "template.atlaGrowLight"},
	{"app.template.atlaGrowLight_desc", "template.atlaGrowLight.desc"},
	{"app.template.atlaGrowLightRB", "template.atlaGrowLightRB"},
	{"app.template.atlaGrowLightRB_desc", "template.atlaGrowLightRB.desc"},
	{"app.template.atlaFluorescent", "template.atlaFluorescent"},
	{"app.template.atlaFluorescent_desc", "template.atlaFluorescent.desc"},
	{"app.template.atlaHalogen", "template.atlaHalogen"},
	{"app.template.atlaHalogen_desc", "template.atlaHalogen.desc"},
	{"app.template.atlaIncandescent", "template.atlaIncandescent"},
	{"app.template.atlaIncandescent_desc", "template.atlaIncandescent.desc"},
	{"app.template.atlaHeatLamp", "template.atlaHeatLamp"},
	{"app.template.atlaHeatLamp_desc", "template.atlaHeatLamp.desc"},
	{"app.template.atlaUvBlacklight", "template.atlaUvBlacklight"},
	{"app.template.atlaUvBlacklight_desc", "template.atlaUvBlacklight.desc"},
	// Tabs (native)
	{"app.tab.general", "tab.general"},
	{"app.tab.dimensions", "tab.dimensions"},
	{"app.tab.lampSets", "tab.lampSets"},
	{"app.tab.optical", "tab.optical"},
	{"app.tab.intensity", "tab.intensity"},
	{"app.tab.diagram", "tab.diagram"},
	// Validation
	{"app.validation.title", "validation.title"},
	// Diagram picker names
	{"app.diagram.polar", "diagram.polar"},
	{"app.diagram.cartesian", "diagram.cartesian"},
	{"app.diagram.butterfly", "diagram.butterfly"},
	{"app.diagram.3d", "diagram.3d"},
	{"app.diagram.room", "diagram.room"},
	{"app.diagram.heatmap", "diagram.heatmap"},
	{"app.diagram.cone", "diagram.cone"},
	{"app.diagram.beam", "diagram.beam"},
	{"app.diagram.spectral", "diagram.spectral"},
	{"app.diagram.ppfd", "diagram.ppfd"},
	{"app.diagram.bug", "diagram.bug"},
	{"app.diagram.lcs", "diagram.lcs"},
	// Tabs (web UI)
	{"ui.tabs.general", "ui.tabs.general"},
	{"ui.tabs.dimensions", "ui.tabs.dimensions"},
	{"ui.tabs.lamp_sets", "ui.tabs.lamp_sets"},
	{"ui.tabs.direct_ratios", "ui.tabs.direct_ratios"},
	{"ui.tabs.intensity", "ui.tabs.intensity"},
	{"ui.tabs.diagram_2d", "ui.tabs.diagram_2d"},
	{"ui.tabs.validation", "ui.tabs.validation"},
	{"ui.tabs.polar", "ui.tabs.polar"},
	{"ui.tabs.cartesian", "ui.tabs.cartesian"},
	{"ui.tabs.heatmap", "ui.tabs.heatmap"},
	{"ui.tabs.spectral", "diagram.spectral"},
	{"ui.tabs.greenhouse", "diagram.ppfd"},
	{"ui.tabs.bug_rating", "diagram.bug"},
	{"ui.tabs.lcs", "diagram.lcs"},
	{"ui.tabs.cone", "cone"},
	{"ui.diagram.title_3d", "diagram.3d"},
	// Diagram labels
	{"diagram.title.polar", "diagram.polar"},
	{"diagram.title.cartesian", "diagram.cartesian"},
	{"diagram.title.cone", "diagram.cone"},
	{"diagram.title.heatmap", "diagram.heatmap"},
	{"diagram.angle.beam", "diagram.beam"},
	{"ui.tabs.diagram_3d", "diagram.butterfly"},
	// Luminaire info
	{"luminaire.info.manufacturer", "general.manufacturer"},
	{"luminaire.info.luminaire_name", "general.luminaireName"},
	{"luminaire.info.luminaire_number", "general.luminaireNumber"},
	{"luminaire.info.file_name", "general.fileName"},
	{"luminaire.info.identification", "general.identification"},
	// Dimensions
	{"luminaire.physical.length", "dimensions.length"},
	{"luminaire.physical.width", "dimensions.width"},
	{"luminaire.physical.height", "dimensions.height"},
	{"luminaire.physical.dimensions_mm", "dimensions.luminaire"},
	{"luminaire.physical.luminous_area_mm", "dimensions.luminousArea"},
	// Optical
	{"luminaire.optical.downward_flux_fraction", "optical.downwardFlux"},
	{"luminaire.optical.light_output_ratio", "optical.lightOutput"},
	{"luminaire.optical.conversion_factor", "optical.conversionFactor"},
	{"luminaire.optical.tilt_angle", "optical.tiltAngle"},
	{"luminaire.photometric.total_flux", "optical.totalFlux"},
	{"luminaire.photometric.max_intensity", "optical.maxIntensity"},
	{"luminaire.photometric.lor", "optical.lor"},
	// Lamp sets
	{"luminaire.lamp_set.title", "lampSets.title"},
	{"luminaire.lamp_set.num_lamps", "lampSets.numLamps"},
	{"luminaire.lamp_set.luminous_flux", "lampSets.luminousFlux"},
	{"luminaire.lamp_set.wattage", "lampSets.wattage"},
	{"luminaire.lamp_set.lamp_type", "lampSets.type"},
	{"luminaire.lamp_set.color_appearance", "lampSets.colorTemp"},
	{"luminaire.lamp_set.color_rendering", "lampSets.criGroup"},
	{"luminaire.lamp_set.remove", "lampSets.remove"},
	// Intensity
	{"ui.intensity.title", "intensity.title"},
	{"ui.data_table.copy_to_clipboard", "intensity.copyCSV"},
}

// applyAliases returns a copy of m extended with the legacy keys from
// aliasTable. A legacy key is added only when its canonical key exists and
// the legacy key is not already set, so entries authored under a legacy key
// are never overwritten and the operation is idempotent.
func applyAliases(m Map) Map {
	result := make(Map, len(m)+len(aliasTable))
	for k, v := range m {
		result[k] = v
	}
	for _, a := range aliasTable {
		value, ok := m[a.canonical]
		if !ok {
			continue
		}
		if _, exists := result[a.legacy]; exists {
			continue
		}
		result[a.legacy] = value
	}
	return result
}
