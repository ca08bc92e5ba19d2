package domain

import "math"

// TotalSteps - количество шагов workflow создания объявления.
const TotalSteps = 5

// Имена шагов в фиксированном порядке.
const (
	StepBasicInfo   = "basic_info"
	StepImages      = "images"
	StepCoordinates = "coordinates"
	StepFeatures    = "features"
	StepPublish     = "publish"
)

// StepState - состояние одного шага workflow.
type StepState struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

// Progress - производное состояние заполненности объявления.
// Вычисляется заново при каждом чтении и нигде не сохраняется:
// сохраненный процент, разошедшийся с вычисленным,- это дефект.
type Progress struct {
	Steps                [TotalSteps]StepState `json:"steps"`
	CompletedCount       int                   `json:"completed_count"`
	CompletionPercentage int                   `json:"completion_percentage"`
	// CurrentStep - индекс первого незаполненного шага.
	// Если заполнены все, равен TotalSteps.
	CurrentStep int `json:"current_step"`
}

// DeriveProgress вычисляет прогресс как чистую функцию от текущих полей объявления.
//
// Предикаты шагов:
//  1. базовая информация: name, propertyType и location непустые;
//  2. изображения: есть миниатюра ИЛИ непустой набор изображений;
//  3. координаты: присутствует пара широта/долгота;
//  4. удобства: запись Features существует (проверяется наличие, не наполнение);
//  5. публикация: status == Published.
func DeriveProgress(l Listing) Progress {
	var p Progress
	p.Steps = [TotalSteps]StepState{
		{Index: 0, Name: StepBasicInfo, Complete: basicInfoComplete(l)},
		{Index: 1, Name: StepImages, Complete: imagesComplete(l)},
		{Index: 2, Name: StepCoordinates, Complete: l.Coordinates != nil},
		{Index: 3, Name: StepFeatures, Complete: l.Features != nil},
		{Index: 4, Name: StepPublish, Complete: l.Status == StatusPublished},
	}

	p.CurrentStep = TotalSteps
	for _, s := range p.Steps {
		if s.Complete {
			p.CompletedCount++
		} else if s.Index < p.CurrentStep {
			p.CurrentStep = s.Index
		}
	}

	// Округляем, а не усекаем: процент должен совпадать с тем, что видит пользователь.
	p.CompletionPercentage = int(math.Round(100 * float64(p.CompletedCount) / TotalSteps))
	return p
}

func basicInfoComplete(l Listing) bool {
	return l.Name != "" && l.PropertyType != "" && l.Location() != ""
}

func imagesComplete(l Listing) bool {
	if l.Media == nil {
		return false
	}
	return l.Media.Thumbnail != "" || len(l.Media.Images) > 0
}

// ReadyToPublish проверяет инвариант публикации: шаги 1-4 должны быть
// заполнены до того, как статус станет Published.
func ReadyToPublish(l Listing) bool {
	p := DeriveProgress(l)
	for _, s := range p.Steps[:TotalSteps-1] {
		if !s.Complete {
			return false
		}
	}
	return true
}

// AggregatedListing - объявление, аннотированное производным прогрессом.
// Именно в таком виде записи отдаются наружу.
type AggregatedListing struct {
	Listing  Listing  `json:"listing"`
	Progress Progress `json:"progress"`
}
