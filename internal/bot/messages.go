package bot

import (
	"fmt"
	"strings"
)

// Textos enviados ao usuário. Fazem parte do contrato observável do bot:
// qualquer mudança é percebida pelos clientes
const (
	msgWelcome = "👋 *Olá! Bem-vindo à Drogasil.*\n\n" +
		"Eu sou o assistente virtual da Drogasil e estou aqui para ajudar com suas dúvidas."

	msgMenuOptions = "🔍 *Como posso ajudar hoje?*\n\n" +
		"Digite o número da opção desejada:\n\n" +
		"1️⃣ - Consulta de preços\n" +
		"2️⃣ - Disponibilidade de produtos\n" +
		"3️⃣ - Informações de entrega\n" +
		"4️⃣ - Falar com um atendente"

	msgInvalidOption = "❌ Opção inválida. Por favor, digite um número de 1 a 4 para selecionar uma opção do menu."

	msgRestartNotice = "Notei que você está tendo dificuldades. Vamos recomeçar para facilitar."

	// Opção 1: Consulta de Preços
	msgPriceInitial = "💊 *Consulta de Preços*\n\n" +
		"Você já é cliente Drogasil?\n\n" +
		"1️⃣ - Sim\n" +
		"2️⃣ - Não"

	// Usado pelos fluxos de preço e de entrega; o texto é o mesmo
	msgInvalidYesNo = "❌ Opção inválida. Por favor, digite 1 para Sim ou 2 para Não."

	msgPriceIsClient = "✅ *Para clientes*\n\n" +
		"Por favor, me informe o número de seu CPF para que eu possa consultar seus dados."

	msgPriceNotClient = "👤 *Para não clientes*\n\n" +
		"Gostaria de realizar seu cadastro para melhores ofertas?\n\n" +
		"1️⃣ - Sim\n" +
		"2️⃣ - Não"

	msgPriceCreateAccountCPF = "📝 *Criar cadastro*\n\n" +
		"Certo, preciso de dois dados para realizar seu cadastro: seu CPF e sua data de nascimento.\n\n" +
		"Primeiro, me informe seu CPF com 11 dígitos (xxx.xxx.xxx-xx):"

	msgPriceCreateAccountBirthdate = "✅ CPF recebido! Agora me informe sua data de nascimento no formato DD/MM/AAAA:"

	msgPriceNoAccount = "👌 *Seguir sem cadastro*\n\n" +
		"Certinho, qual o medicamento ou produto que deseja consultar?"

	msgPriceAskProduct = "Obrigado! Qual medicamento ou produto você deseja consultar?"

	msgPriceAskProductAfterSignup = "Obrigado pelo seu cadastro! Qual medicamento ou produto você deseja consultar?"

	msgInvalidCPF = "❌ CPF inválido. Por favor, digite um CPF válido no formato 123.456.789-00 ou apenas números."

	msgInvalidBirthdate = "❌ Data inválida. Por favor, digite uma data válida no formato DD/MM/AAAA."

	// Opção 2: Disponibilidade de Produtos
	msgProductInitial = "🔍 *Disponibilidade de Produtos*\n\n" +
		"Para verificar a disponibilidade, por favor, informe o nome do produto."

	msgProductMoreDetails = "Por favor, forneça mais detalhes sobre o produto que deseja verificar a disponibilidade."

	// Opção 3: Informações de Entrega
	msgDeliveryProducts = "✅ *Solicitar Entrega*\n\n" +
		"Por favor, me informe os produtos que deseja para a entrega"

	msgDeliveryDeclined = "👤 *Desistir da Entrega*\n\n" +
		"Gostaria de voltar para o menu principal?\n\n" +
		"1️⃣ - Sim\n" +
		"2️⃣ - Falar com um atendente\n"

	msgDeliveryDeclinedInvalid = "❌ Opção inválida. Por favor, digite 1 para Sim ou 2 para falar com um atendente."

	// Opção 4: Falar com atendente
	msgAgentInitial = "👨‍💼 *Falar com um atendente*\n\n" +
		"Claro! Vou transferir você para um de nossos atendentes especializados. Qual o assunto que você gostaria de tratar?"

	msgAgentSubjectRequired = "Por favor, descreva brevemente o assunto que gostaria de tratar com nosso atendente."

	msgTransferringToAgent = "👨‍💼 Obrigado pelas informações! Para melhor atendê-lo, vou transferir sua solicitação para um de nossos atendentes especializados.\n\n" +
		"Um atendente humano assumirá esta conversa em breve. Tenha uma ótima experiência!"
)

// deliveryInitialMessage monta a abertura do fluxo de entrega com a cidade e
// a taxa configuradas
func deliveryInitialMessage(city string, fee float64) string {
	value := strings.Replace(fmt.Sprintf("%.2f", fee), ".", ",", 1)
	return "🚚 *Informações de Entrega*\n\n" +
		fmt.Sprintf("Entregamos para toda %s mediante a taxa de R$ %s\n\n", city, value) +
		"Gostaria de prosseguir com a solicitação?\n\n" +
		"1️⃣ - Sim\n" +
		"2️⃣ - Não"
}
