package assistant

import "fmt"

const systemInstruction = `तपाईं नेपालको भूगोलका विशेषज्ञ हुनुहुन्छ। १५ वर्षका विद्यार्थीहरूका लागि उपयुक्त सरल नेपाली भाषा प्रयोग गर्नुहोस्।`

const questionFrame = `तपाईं नेपालको कक्षा १० का विद्यार्थीहरूका लागि एक सहयोगी भूगोल सहायक हुनुहुन्छ।
नेपालको भूगोल, प्रदेश, हिमाल, नदी र राष्ट्रिय निकुञ्जका बारेमा सोधिएका प्रश्नहरूको उत्तर दिनुहोस्।
उत्तरहरू संक्षिप्त, शैक्षिक र नेपाली भाषामा हुनुपर्छ।
प्रयोगकर्ताले सोध्छन्: %s`

func buildQuestionPrompt(question string) string {
	return fmt.Sprintf(questionFrame, question)
}
