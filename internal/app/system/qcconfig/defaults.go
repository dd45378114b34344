package qcconfig

// Default returns the built-in panel configuration. Each call returns a
// fresh copy so callers may modify it.
func Default() *Config {
	return &Config{
		PlotValues:    defaultPlotValues(),
		ValueFromTest: defaultValueFromTest(),
		Annotations:   defaultAnnotations(),
	}
}

func defaultPlotValues() []PlotValue {
	return []PlotValue{
		{
			ID:     "properties.denovo_assembly.summary.bin_length_at_1x",
			Name:   "Genome size (1x)",
			Limits: []float64{1500000, 6000000},
		},
		{
			ID:     "properties.denovo_assembly.summary.bin_length_at_10x",
			Name:   "Genome size (10x)",
			Limits: []float64{1500000, 6000000},
		},
		{
			ID:     "properties.denovo_assembly.summary.bin_length_1x_25x_diff",
			Name:   "Genome size 1x - 10x diff",
			Limits: []float64{0, 260000},
		},
		{
			ID:     "properties.denovo_assembly.summary.bin_coverage_at_1x",
			Name:   "Avg coverage (1x)",
			Limits: []float64{0, 200},
		},
		{
			ID:     "properties.denovo_assembly.summary.bin_contigs_at_1x",
			Name:   "Contigs (1x)",
			Limits: []float64{0, 700},
		},
		{
			ID:     "properties.read_stats.summary.filtered_reads_num",
			Name:   "Filtered reads num",
			Limits: []float64{0, 8000000},
		},
		{
			ID:     "properties.species_detection.summary.percent_classified_species_1",
			Name:   "Main species fraction",
			Limits: []float64{0.75, 1},
		},
		{
			ID:     "properties.species_detection.summary.percent_unclassified",
			Name:   "Unclassified reads",
			Limits: []float64{0, 0.25},
		},
	}
}

// QC test results are stored upstream as "status:reason:value".
func defaultValueFromTest() []string {
	return []string{
		"properties.stamper.summary.ssi_stamp.assemblatron:1x10xsizediff",
		"properties.stamper.summary.ssi_stamp.whats_my_species:minspecies",
		"properties.stamper.summary.ssi_stamp.whats_my_species:nosubmitted",
		"properties.stamper.summary.ssi_stamp.whats_my_species:detectedspeciesmismatch",
		"properties.stamper.summary.ssi_stamp.assemblatron:avgcoverage",
		"properties.stamper.summary.ssi_stamp.assemblatron:numreads",
	}
}

func defaultAnnotations() []Annotation {
	return []Annotation{
		{Row: 1, Bound: BoundMinLength, Y: 0, Text: "min"},
		{Row: 1, Bound: BoundMinLength, Y: 1, Text: "min"},
		{Row: 1, Bound: BoundMaxLength, Y: 0, Text: "max"},
		{Row: 1, Bound: BoundMaxLength, Y: 1, Text: "max"},
		{Row: 2, X: 250000, Text: "max"},
		// coverage
		{Row: 3, X: 10, Text: "fail"},
		{Row: 3, X: 25, Text: "low"},
		{Row: 3, X: 50, Text: "warn"},
		// read count
		{Row: 5, X: 10000, Text: "min"},
		{Row: 6, X: 0.95, Text: "min"},
		{Row: 7, X: 0.2, Text: "max"},
	}
}
