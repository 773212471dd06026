package main

import (
	"context"
	"fmt"
	"time"

	"github.com/galaxia-edu/galaxia-backend/internal/config"
	"github.com/galaxia-edu/galaxia-backend/internal/database"
	"github.com/galaxia-edu/galaxia-backend/internal/logger"
	"github.com/galaxia-edu/galaxia-backend/internal/model"
	"github.com/galaxia-edu/galaxia-backend/internal/repository"
)

// seedEntry groups pre-authored questions under their bank filter.
type seedEntry struct {
	level     config.Level
	topic     string
	questions []model.Question
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	reserveRepo := repository.NewReserveQuestionRepository(pool)

	fmt.Println("=== Seeding Reserve Question Bank ===")

	successCount := 0
	total := 0
	for _, entry := range seedBank() {
		existing, err := reserveRepo.CountByLevelTopic(ctx, string(entry.level), entry.topic)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to count existing questions")
		}
		if existing > 0 {
			fmt.Printf("Skipping %s/%s: %d questions already present\n", entry.level, entry.topic, existing)
			continue
		}

		for i := range entry.questions {
			total++
			rq := &model.ReserveQuestion{
				Level:    string(entry.level),
				Topic:    entry.topic,
				Question: entry.questions[i],
			}
			if err := reserveRepo.Insert(ctx, rq); err != nil {
				fmt.Printf("Error inserting question for %s/%s: %v\n", entry.level, entry.topic, err)
				continue
			}
			successCount++
		}
		fmt.Printf("Seeded %s/%s with %d questions\n", entry.level, entry.topic, len(entry.questions))
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d questions.\n", successCount, total)
}

func seedBank() []seedEntry {
	return []seedEntry{
		{
			level: config.LevelEasy,
			topic: "sintaxe",
			questions: []model.Question{
				{
					Text: "Na frase 'O menino comprou um sorvete', qual é o sujeito?",
					Choices: map[string]string{
						"A": "O menino",
						"B": "comprou",
						"C": "um sorvete",
						"D": "sorvete",
					},
					Answer:      "A",
					Subtopic:    "sujeito e predicado",
					Explanation: "O sujeito é o termo sobre o qual se declara algo. Quem comprou? O menino.",
				},
				{
					Text: "Em 'As meninas estudam muito', o verbo concorda com:",
					Choices: map[string]string{
						"A": "o objeto",
						"B": "o sujeito 'As meninas'",
						"C": "o advérbio 'muito'",
						"D": "nenhum termo",
					},
					Answer:      "B",
					Subtopic:    "concordância verbal",
					Explanation: "O verbo concorda em número e pessoa com o sujeito: 'as meninas' (plural) pede 'estudam'.",
				},
				{
					Text: "Qual frase apresenta um predicado verbal?",
					Choices: map[string]string{
						"A": "Maria é inteligente.",
						"B": "O céu parece limpo.",
						"C": "O cachorro correu pelo parque.",
						"D": "Ela continua doente.",
					},
					Answer:      "C",
					Subtopic:    "tipos de predicado",
					Explanation: "Em 'O cachorro correu pelo parque', o núcleo do predicado é o verbo de ação 'correu'.",
				},
			},
		},
		{
			level: config.LevelMedium,
			topic: "sintaxe",
			questions: []model.Question{
				{
					Text: "Em 'Entreguei o livro ao professor', o termo 'ao professor' é:",
					Choices: map[string]string{
						"A": "objeto direto",
						"B": "objeto indireto",
						"C": "adjunto adnominal",
						"D": "predicativo do sujeito",
					},
					Answer:      "B",
					Subtopic:    "complementos verbais",
					Explanation: "'Entregar' pede dois complementos: entrega-se algo (objeto direto) a alguém (objeto indireto, com preposição).",
				},
				{
					Text: "Assinale a frase em que a vírgula separa um aposto:",
					Choices: map[string]string{
						"A": "Comprei pão, leite e queijo.",
						"B": "João, venha até aqui!",
						"C": "Machado de Assis, autor de Dom Casmurro, nasceu no Rio.",
						"D": "Quando cheguei, todos já haviam saído.",
					},
					Answer:      "C",
					Subtopic:    "pontuação",
					Explanation: "'Autor de Dom Casmurro' explica o termo anterior, caracterizando um aposto explicativo entre vírgulas.",
				},
				{
					Text: "Em 'É necessário que todos participem', a oração destacada é:",
					Choices: map[string]string{
						"A": "subordinada substantiva subjetiva",
						"B": "subordinada adjetiva restritiva",
						"C": "coordenada explicativa",
						"D": "subordinada adverbial causal",
					},
					Answer:      "A",
					Subtopic:    "orações subordinadas",
					Explanation: "A oração 'que todos participem' exerce a função de sujeito de 'É necessário'.",
				},
			},
		},
		{
			level: config.LevelHard,
			topic: "sintaxe",
			questions: []model.Question{
				{
					Text: "Assinale a alternativa em que o uso da crase está correto:",
					Choices: map[string]string{
						"A": "Vou à pé para a escola.",
						"B": "Refiro-me à aluna que chegou cedo.",
						"C": "Ele começou à estudar ontem.",
						"D": "Entreguei o documento à ele.",
					},
					Answer:      "B",
					Subtopic:    "crase",
					Explanation: "'Referir-se a' + 'a aluna' produz 'à aluna'. Não há crase antes de verbo, pronome pessoal ou em 'a pé'.",
				},
				{
					Text: "Em 'Aluga-se casas na praia', segundo a norma-padrão:",
					Choices: map[string]string{
						"A": "a frase está correta",
						"B": "o verbo deveria estar no plural: 'Alugam-se casas'",
						"C": "o 'se' deveria ser retirado",
						"D": "'casas' deveria estar no singular",
					},
					Answer:      "B",
					Subtopic:    "concordância com partícula apassivadora",
					Explanation: "'Se' é partícula apassivadora e 'casas' é o sujeito paciente, logo o verbo vai ao plural: 'Alugam-se casas'.",
				},
			},
		},
		{
			level: config.LevelEasy,
			topic: "pragmatica",
			questions: []model.Question{
				{
					Text: "Qual frase é mais adequada para pedir silêncio a um desconhecido no cinema?",
					Choices: map[string]string{
						"A": "Cala a boca!",
						"B": "Você poderia falar mais baixo, por favor?",
						"C": "Silêncio, agora!",
						"D": "Para de falar.",
					},
					Answer:      "B",
					Subtopic:    "adequação ao contexto",
					Explanation: "Com desconhecidos, a norma de polidez pede formulação indireta e marcador de cortesia ('por favor').",
				},
				{
					Text: "A expressão 'quebrar o galho' em 'Ele quebrou meu galho ontem' significa:",
					Choices: map[string]string{
						"A": "danificar uma árvore",
						"B": "ajudar em uma situação difícil",
						"C": "atrapalhar alguém",
						"D": "contar uma mentira",
					},
					Answer:      "B",
					Subtopic:    "expressões idiomáticas",
					Explanation: "'Quebrar o galho' é uma expressão idiomática que significa ajudar, resolver provisoriamente um problema.",
				},
			},
		},
		{
			level: config.LevelMedium,
			topic: "pragmatica",
			questions: []model.Question{
				{
					Text: "Na frase 'Será que você pode fechar a janela?', o falante realiza um ato de:",
					Choices: map[string]string{
						"A": "pergunta genuína sobre capacidade",
						"B": "pedido indireto",
						"C": "ordem direta",
						"D": "promessa",
					},
					Answer:      "B",
					Subtopic:    "atos de fala",
					Explanation: "Embora tenha forma de pergunta, a intenção comunicativa é um pedido; trata-se de um ato de fala indireto.",
				},
				{
					Text: "Em uma mensagem formal de e-mail para uma empresa, qual saudação é mais adequada?",
					Choices: map[string]string{
						"A": "E aí, galera!",
						"B": "Oi, gente!",
						"C": "Prezados senhores,",
						"D": "Fala, pessoal!",
					},
					Answer:      "C",
					Subtopic:    "registro formal e informal",
					Explanation: "O contexto empresarial pede registro formal; 'Prezados senhores' é a saudação convencional.",
				},
			},
		},
		{
			level: config.LevelEasy,
			topic: "morfologia",
			questions: []model.Question{
				{
					Text: "Qual é a classe gramatical da palavra 'rapidamente'?",
					Choices: map[string]string{
						"A": "adjetivo",
						"B": "substantivo",
						"C": "advérbio",
						"D": "verbo",
					},
					Answer:      "C",
					Subtopic:    "classes de palavras",
					Explanation: "Palavras terminadas em '-mente' derivadas de adjetivos são advérbios de modo.",
				},
				{
					Text: "O plural de 'cidadão' é:",
					Choices: map[string]string{
						"A": "cidadões",
						"B": "cidadãos",
						"C": "cidadães",
						"D": "cidadons",
					},
					Answer:      "B",
					Subtopic:    "flexão de número",
					Explanation: "'Cidadão' faz plural regular em '-ãos': cidadãos.",
				},
			},
		},
		{
			level: config.LevelMedium,
			topic: "morfologia",
			questions: []model.Question{
				{
					Text: "Na palavra 'infelizmente', o elemento 'in-' é:",
					Choices: map[string]string{
						"A": "sufixo",
						"B": "radical",
						"C": "prefixo",
						"D": "desinência",
					},
					Answer:      "C",
					Subtopic:    "estrutura das palavras",
					Explanation: "'In-' antecede o radical e inverte o sentido de 'feliz'; elementos antepostos ao radical são prefixos.",
				},
				{
					Text: "O verbo 'intervir' no pretérito perfeito, terceira pessoa do singular, é:",
					Choices: map[string]string{
						"A": "interviu",
						"B": "interveio",
						"C": "intervinha",
						"D": "intervisse",
					},
					Answer:      "B",
					Subtopic:    "conjugação de verbos irregulares",
					Explanation: "'Intervir' segue a conjugação de 'vir': ele veio, ele interveio.",
				},
			},
		},
		{
			level: config.LevelMedium,
			topic: "revisao_geral",
			questions: []model.Question{
				{
					Text: "Assinale a frase escrita de acordo com a norma-padrão:",
					Choices: map[string]string{
						"A": "Haviam muitos alunos na sala.",
						"B": "Havia muitos alunos na sala.",
						"C": "Houveram muitos alunos na sala.",
						"D": "Haverão muitos alunos na sala.",
					},
					Answer:      "B",
					Subtopic:    "verbo haver impessoal",
					Explanation: "'Haver' no sentido de existir é impessoal e fica na terceira pessoa do singular: 'Havia muitos alunos'.",
				},
				{
					Text: "Em qual alternativa o uso de 'mal' está correto?",
					Choices: map[string]string{
						"A": "Ele é um mal aluno.",
						"B": "Ela dormiu mau ontem.",
						"C": "Mal cheguei, o telefone tocou.",
						"D": "Este remédio faz mau à saúde.",
					},
					Answer:      "C",
					Subtopic:    "mal e mau",
					Explanation: "'Mal' é advérbio ou conjunção temporal (= assim que); 'mau' é adjetivo, oposto de 'bom'.",
				},
			},
		},
	}
}
