package model

// ProgressRecord one site survey date and its artifacts
type ProgressRecord struct {
	Key        string `json:"key"`        // date key, e.g. "06 Feb"
	ExcelPath  string `json:"excelPath"`  // progress workbook
	GifPath    string `json:"gifPath"`    // progress animation
	AsBuiltURL string `json:"asBuiltUrl"` // as-built model embed
	PhotoPath  string `json:"photoPath"`  // optional, discovered by glob
}
