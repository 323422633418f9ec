package output

import (
	"encoding/json"

	toon "github.com/mateuszkardas/toon-go"
	"github.com/ukaji3/xlsbinspect-go/pkg/xlsbinspect/models"
)

// ToTOON renders a ResultSet in TOON. The result set is first reduced to
// plain maps and slices so sheet summaries of either backend encode alike.
func ToTOON(results models.ResultSet) (string, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return "", err
	}
	var plain map[string]interface{}
	if err := json.Unmarshal(data, &plain); err != nil {
		return "", err
	}
	return toon.Marshal(plain, nil)
}
